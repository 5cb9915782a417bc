package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Profile:   "minimal",
			Installer: "auto",
		},
		Dependencies: DependenciesConfig{
			Minimal:  DefaultMinimalDependencies(),
			Packaged: DefaultPackagedDependencies(),
			Dev:      DefaultDevDependencies(),
		},
		Python: PythonConfig{
			Constraint: ">= 3.10",
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// DefaultMinimalDependencies returns the default package set for the minimal
// profile.
func DefaultMinimalDependencies() []string {
	return []string{"requests", "pandas", "numpy", "python-dotenv", "jupyterlab"}
}

// DefaultPackagedDependencies returns the default package set for the
// packaged profile.
func DefaultPackagedDependencies() []string {
	return []string{"requests", "pandas", "numpy", "python-dotenv"}
}

// DefaultDevDependencies returns the default development package set.
func DefaultDevDependencies() []string {
	return []string{"pytest"}
}

// DefaultConfigPath returns the default config file location
// (~/.config/pystart/config.yaml). Returns an empty string if the home
// directory cannot be determined.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pystart", "config.yaml")
}
