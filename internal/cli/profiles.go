package cli

import (
	"fmt"

	"github.com/pystart-cli/pystart/internal/scaffold"
	"github.com/spf13/cobra"
)

// profilesCmd represents the profiles command
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List available template profiles",
	Long: `List the template profiles available for "pystart new".

Examples:
  pystart profiles`,
	RunE: runProfiles,
}

// profileDescriptions maps each profile to a short layout summary.
var profileDescriptions = map[scaffold.Profile]string{
	scaffold.ProfileMinimal:  "flat layout: src/, notebooks/, src/app.py, requirements.txt from the environment",
	scaffold.ProfilePackaged: "packaged layout: src/<package>/ modules, tests/, pyproject.toml manifest",
}

func runProfiles(cmd *cobra.Command, args []string) error {
	printHeader("Template profiles")
	for _, p := range scaffold.Profiles() {
		printInfo(fmt.Sprintf("  %-10s %s", p.String(), profileDescriptions[p]))
	}
	printInfo("")
	return nil
}
