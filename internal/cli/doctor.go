package cli

import (
	"fmt"

	"github.com/pystart-cli/pystart/internal/app"
	"github.com/spf13/cobra"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check external tools",
	Long: `Check that the external tools pystart depends on are available:
the Python interpreter, the uv installer (optional), and git. Also verifies
that the interpreter satisfies the configured version constraint.

Examples:
  pystart doctor`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printErrorMsg(fmt.Sprintf("Configuration error: %v", err))
		return err
	}

	report := app.Doctor(cmd.Context(), nil, cfg)

	printHeader("External tools")
	for _, check := range report.Checks {
		switch {
		case !check.Found && check.Required:
			printErrorMsg(fmt.Sprintf("%s: not found (required)", check.Tool))
		case !check.Found:
			printWarning(fmt.Sprintf("%s: not found (optional)", check.Tool))
		case check.Problem != "":
			printWarning(fmt.Sprintf("%s %s: %s", check.Tool, check.Version, check.Problem))
		default:
			printSuccess(fmt.Sprintf("%s %s", check.Tool, check.Version))
		}
	}
	printInfo("")

	if !report.Healthy() {
		return fmt.Errorf("required tools are missing or misconfigured")
	}

	printSuccess("All required tools are available")
	return nil
}
