package cli

import (
	"fmt"
	"os"

	"github.com/pystart-cli/pystart/internal/app"
	"github.com/pystart-cli/pystart/internal/config"
	"github.com/pystart-cli/pystart/internal/scaffold"
	"github.com/spf13/cobra"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Scaffold a new Python project",
	Long: `Create a new Python project directory: directory tree and boilerplate
files for the selected template profile, a virtual environment with the
default dependencies installed, an environment-info file, and a git
repository with an initial commit.

When name is omitted, pystart prompts for it interactively.

Examples:
  pystart new my-data-app
  pystart new my-data-app --profile packaged
  pystart new my-data-app --installer uv
  pystart new my-data-app --dry-run
  pystart new`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

// New command flags
var (
	newProfile       string
	newInstaller     string
	newSkipInstall   bool
	newSkipVCS       bool
	newKeepOnFailure bool
	newDryRun        bool
)

func init() {
	// Flags for new
	newCmd.Flags().StringVarP(&newProfile, FlagProfile, "p", "", DescProfile)
	newCmd.Flags().StringVarP(&newInstaller, FlagInstaller, "i", "", DescInstaller)
	newCmd.Flags().BoolVar(&newSkipInstall, FlagSkipInstall, false, DescSkipInstall)
	newCmd.Flags().BoolVar(&newSkipVCS, FlagSkipVCS, false, DescSkipVCS)
	newCmd.Flags().BoolVar(&newKeepOnFailure, FlagKeepOnFailure, false, DescKeepOnFailure)
	newCmd.Flags().BoolVarP(&newDryRun, FlagDryRun, "d", false, DescDryRun)
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printErrorMsg(fmt.Sprintf("Configuration error: %v", err))
		return err
	}

	profileName := newProfile
	if profileName == "" {
		profileName = cfg.Defaults.Profile
	}
	profile, err := scaffold.ParseProfile(profileName)
	if err != nil {
		return err
	}

	baseDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		// Interactive variant: no positional argument, prompt on stdin.
		if !cmd.Flags().Changed(FlagProfile) {
			profile, err = PromptForProfile(profile)
			if err != nil {
				return err
			}
		}
		name, err = PromptForProjectName(baseDir, profile)
		if err != nil {
			return err
		}
	}

	if newDryRun {
		printInfo("[DRY RUN] Would scaffold project")
	} else {
		printProgress(fmt.Sprintf("Scaffolding %s project %q...", profile, name))
	}

	result, err := app.NewProject(cmd.Context(), app.NewProjectOptions{
		Name:          name,
		Profile:       profile,
		Installer:     newInstaller,
		BaseDir:       baseDir,
		SkipInstall:   newSkipInstall,
		SkipVCS:       newSkipVCS,
		KeepOnFailure: newKeepOnFailure,
		DryRun:        newDryRun,
		Config:        cfg,
	})

	if err != nil {
		printErrorMsg(fmt.Sprintf("Scaffold failed: %v", err))
		if result != nil {
			if result.RolledBack {
				printWarning("Partially created directory was removed")
			} else if len(result.CreatedPaths) > 0 {
				printWarning(fmt.Sprintf("Created files left on disk at: %s", result.Spec.Root))
			}
		}
		return err
	}

	if newDryRun {
		printInfo("")
		printInfo("[DRY RUN] Entries to create:")
		for _, node := range result.Plan.Nodes {
			if node.Kind == scaffold.Directory {
				printInfo(fmt.Sprintf("  - %s/", node.RelPath))
			} else {
				printInfo(fmt.Sprintf("  - %s", node.RelPath))
			}
		}
		printInfo("")
		printInfo("No files written (dry run).")
		return nil
	}

	printSuccess(fmt.Sprintf("Project %q created", result.Spec.Name))
	printInfo("")
	printInfo("Summary:")
	printInfo(fmt.Sprintf("  Profile: %s", result.Spec.Profile))
	printInfo(fmt.Sprintf("  Created: %d paths", len(result.CreatedPaths)))
	if result.EnvInfo != nil {
		printInfo(fmt.Sprintf("  Interpreter: %s", result.EnvInfo.Interpreter))
	}
	if result.VCSInitialized {
		printInfo("  Repository initialized with initial commit")
	}

	printInfo("")
	printInfo("Next steps:")
	printInfo(fmt.Sprintf("  cd %s", result.Spec.Name))
	if result.EnvInfo != nil {
		printInfo(fmt.Sprintf("  %s", result.EnvInfo.Activate))
	}
	if result.Spec.Profile == scaffold.ProfilePackaged {
		printInfo(fmt.Sprintf("  python -m %s.main", result.Spec.PackageName))
	} else {
		printInfo("  python src/app.py")
	}

	return nil
}

// loadConfig loads the config file from --config or the default location.
func loadConfig() (*config.Config, error) {
	path := globalConfig
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.NewLoader().LoadOrDefault(path)
}
