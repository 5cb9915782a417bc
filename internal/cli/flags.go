package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagProfile       = "profile"
	FlagInstaller     = "installer"
	FlagSkipInstall   = "skip-install"
	FlagSkipVCS       = "skip-vcs"
	FlagKeepOnFailure = "keep-on-failure"
	FlagDryRun        = "dry-run"
	FlagConfig        = "config"
	FlagNoColor       = "no-color"
	FlagQuiet         = "quiet"
	FlagDebug         = "debug"

	// Flag descriptions
	DescProfile       = "Template profile (minimal, packaged)"
	DescInstaller     = "Installer strategy (auto, uv, venv)"
	DescSkipInstall   = "Skip virtual environment provisioning"
	DescSkipVCS       = "Skip git repository initialization"
	DescKeepOnFailure = "Keep the partially created directory on failure"
	DescDryRun        = "Show the computed plan without writing files"
	DescConfig        = "Path to config file"
	DescNoColor       = "Disable colored output"
	DescQuiet         = "Suppress non-error output"
	DescDebug         = "Enable debug logging"
)
