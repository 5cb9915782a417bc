package provision

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pystart-cli/pystart/internal/execx"
)

// RequirementsFileName is the flat dependency list exported from the
// environment for the minimal profile.
const RequirementsFileName = "requirements.txt"

// Options configures a provisioning run.
type Options struct {
	// Root is the project root directory.
	Root string
	// Packages are the dependencies to install.
	Packages []string
	// WriteRequirements exports the installed package list to
	// requirements.txt after installation. Profiles that declare their
	// dependencies in a manifest leave this off.
	WriteRequirements bool
}

// Provision creates the virtual environment, installs the declared packages,
// optionally exports the flat requirements list, and writes the env-info
// file. Each step is a single blocking external call; any failure terminates
// the run without retry.
func Provision(ctx context.Context, r execx.CommandRunner, installer Installer, opts Options) (*EnvInfo, error) {
	log.Debug("provisioning environment", "installer", installer.Name(), "root", opts.Root)

	if err := installer.CreateEnv(ctx, r, opts.Root); err != nil {
		return nil, err
	}

	if err := installer.Install(ctx, r, opts.Root, opts.Packages); err != nil {
		return nil, err
	}

	if opts.WriteRequirements {
		frozen, err := installer.Freeze(ctx, r, opts.Root)
		if err != nil {
			return nil, err
		}
		reqPath := filepath.Join(opts.Root, RequirementsFileName)
		if err := os.WriteFile(reqPath, frozen, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", RequirementsFileName, err)
		}
		log.Debug("exported requirements", "path", reqPath)
	}

	info := NewEnvInfo(opts.Root)
	if _, err := info.WriteFile(opts.Root); err != nil {
		return nil, err
	}

	return info, nil
}
