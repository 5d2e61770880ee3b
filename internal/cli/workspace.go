package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marshallmcdonnell/advent-of-code-2019/internal/domain"
	"github.com/marshallmcdonnell/advent-of-code-2019/internal/infra/reportstore"
	"github.com/marshallmcdonnell/advent-of-code-2019/internal/infra/wirefile"
	"github.com/marshallmcdonnell/advent-of-code-2019/internal/infra/workspacefinder"
	"github.com/marshallmcdonnell/advent-of-code-2019/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	source  ports.InstructionSource
	catalog ports.InputCatalog

	store ports.ReportStore
}

// loadWorkspace resolves the workspace root and its config. Outside a
// workspace the current directory is used with default settings, so a bare
// `crossedwires solve input.txt` works without `init`.
func loadWorkspace(g *globals) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(g.workspace)
	if err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig()
	switch {
	case g.configPath != "":
		cfg, err = workspacefinder.LoadConfigFile(g.configPath)
		if err != nil {
			return nil, err
		}
	case found:
		cfg, err = workspacefinder.LoadConfig(root)
		if err != nil && !domain.IsKind(err, domain.KindNotFound) {
			return nil, err
		}
	}

	loader := wirefile.NewLoader(
		wirefile.WithInputsDir(cfg.Paths.InputsDir),
	)

	store := reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true))

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		source:  loader,
		catalog: loader,
		store:   store,
	}, nil
}

// resolveWorkspaceRoot returns the root and whether it holds a config file.
func resolveWorkspaceRoot(workspaceFlag string) (string, bool, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, fileExists(filepath.Join(abs, workspacefinder.ConfigFileName)), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return wd, false, nil
		}
		return "", false, err
	}
	return root, true, nil
}

// resolveInputPath accepts "-", a path (relative to the working directory
// first, then the workspace root) or a bare input name looked up in the
// inputs directory with or without a .txt extension.
func resolveInputPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("input is required")
	}
	if in == wirefile.StdinPath {
		return in, nil
	}

	if fileExists(in) {
		return filepath.Clean(in), nil
	}

	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	inputsDir := filepath.Join(ws.root, ws.cfg.Paths.InputsDir)
	for _, candidate := range []string{in, in + ".txt"} {
		p := filepath.Join(inputsDir, candidate)
		if fileExists(p) {
			return p, nil
		}
	}

	return "", &domain.OpError{
		Op:    "cli.resolve_input",
		Kind:  domain.KindNotFound,
		Input: in,
		Path:  inputsDir,
		Err:   domain.ErrNotFound,
	}
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
