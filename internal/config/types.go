package config

// Config represents the global pystart configuration, loaded from an optional
// YAML file and merged over built-in defaults.
type Config struct {
	// Defaults configures the values used when flags are not given.
	Defaults DefaultsConfig `yaml:"defaults"`
	// Dependencies configures the package sets installed per profile.
	Dependencies DependenciesConfig `yaml:"dependencies"`
	// Python configures interpreter requirements.
	Python PythonConfig `yaml:"python"`
	// Output configures display settings.
	Output OutputConfig `yaml:"output"`
}

// DefaultsConfig represents default values for scaffold options.
type DefaultsConfig struct {
	// Profile is the default template profile ("minimal" or "packaged").
	Profile string `yaml:"profile"`
	// Installer is the default installer strategy ("auto", "uv", or "venv").
	Installer string `yaml:"installer"`
}

// DependenciesConfig represents the default dependency sets.
type DependenciesConfig struct {
	// Minimal is installed for the minimal profile.
	Minimal []string `yaml:"minimal"`
	// Packaged is installed and declared in the manifest for the packaged profile.
	Packaged []string `yaml:"packaged"`
	// Dev is declared as optional development dependencies in the manifest.
	Dev []string `yaml:"dev"`
}

// PythonConfig represents interpreter requirements.
type PythonConfig struct {
	// Constraint is a semantic version constraint the interpreter must
	// satisfy (e.g. ">= 3.10"). Checked by `pystart doctor` and recorded as
	// requires-python in generated manifests.
	Constraint string `yaml:"constraint"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `yaml:"color"`
}
