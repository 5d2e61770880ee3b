package domain

// Config represents the crossedwires configuration loaded from crossedwires.yaml.
type Config struct {
	Defaults      DefaultsConfig
	Paths         PathsConfig
	ExpectedPaths int
}

type DefaultsConfig struct {
	Part   Part
	Format string
}

type PathsConfig struct {
	InputsDir  string
	ReportsDir string
}

// DefaultConfig provides sane defaults if crossedwires.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Part:   PartDistance,
			Format: "pretty",
		},
		Paths: PathsConfig{
			InputsDir:  "inputs",
			ReportsDir: "reports",
		},
	}
}

// WorkspaceSpec describes a workspace to scaffold.
type WorkspaceSpec struct {
	Root string
}

// InputRef points at an instruction file inside a workspace.
type InputRef struct {
	Name string
	Path string
}
