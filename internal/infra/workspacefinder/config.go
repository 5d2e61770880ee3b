package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/marshallmcdonnell/advent-of-code-2019/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads crossedwires.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	return LoadConfigFile(filepath.Join(root, ConfigFileName))
}

// LoadConfigFile loads an explicit config file and applies defaults.
func LoadConfigFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.CrossedWires.Defaults.Part != nil {
		part, err := domain.ParsePart(*y.CrossedWires.Defaults.Part)
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		cfg.Defaults.Part = part
	}
	if y.CrossedWires.Defaults.Format != "" {
		cfg.Defaults.Format = y.CrossedWires.Defaults.Format
	}
	if y.CrossedWires.Paths.InputsDir != "" {
		cfg.Paths.InputsDir = y.CrossedWires.Paths.InputsDir
	}
	if y.CrossedWires.Paths.ReportsDir != "" {
		cfg.Paths.ReportsDir = y.CrossedWires.Paths.ReportsDir
	}
	if y.CrossedWires.ExpectedPaths != nil {
		if *y.CrossedWires.ExpectedPaths < 0 {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  domain.ErrInvalidConfig,
			}
		}
		cfg.ExpectedPaths = *y.CrossedWires.ExpectedPaths
	}

	return cfg, nil
}

type yamlConfig struct {
	CrossedWires struct {
		Defaults struct {
			Part   *int   `yaml:"part"`
			Format string `yaml:"format"`
		} `yaml:"defaults"`

		Paths struct {
			InputsDir  string `yaml:"inputs_dir"`
			ReportsDir string `yaml:"reports_dir"`
		} `yaml:"paths"`

		ExpectedPaths *int `yaml:"expected_paths"`
	} `yaml:"crossedwires"`
}
