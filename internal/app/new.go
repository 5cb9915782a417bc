package app

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pystart-cli/pystart/internal/config"
	"github.com/pystart-cli/pystart/internal/execx"
	"github.com/pystart-cli/pystart/internal/provision"
	"github.com/pystart-cli/pystart/internal/scaffold"
	"github.com/pystart-cli/pystart/internal/vcs"
)

// NewProjectOptions holds options for scaffolding a new project.
type NewProjectOptions struct {
	// Name is the raw project name from the user.
	Name string
	// Profile selects the template profile.
	Profile scaffold.Profile
	// Installer selects the installer strategy ("auto", "uv", "venv").
	Installer string
	// BaseDir is the directory the project is created in. Defaults to the
	// current working directory.
	BaseDir string
	// SkipInstall skips environment provisioning.
	SkipInstall bool
	// SkipVCS skips repository initialization.
	SkipVCS bool
	// KeepOnFailure disables rollback of a partially created project root.
	KeepOnFailure bool
	// DryRun computes the plan without touching the filesystem.
	DryRun bool
	// Config is the loaded configuration. Defaults to config.DefaultConfig().
	Config *config.Config
	// Runner executes external tools. Defaults to the real runner.
	Runner execx.CommandRunner
	// Writer writes plan entries. Defaults to the real filesystem writer.
	Writer scaffold.Writer
}

// NewProjectResult holds the result of scaffolding a new project.
type NewProjectResult struct {
	// Spec is the validated project spec.
	Spec *scaffold.ProjectSpec
	// Plan is the computed scaffold plan.
	Plan *scaffold.Plan
	// CreatedPaths are the filesystem paths created, in creation order.
	CreatedPaths []string
	// EnvInfo describes the provisioned environment, nil when provisioning
	// was skipped.
	EnvInfo *provision.EnvInfo
	// VCSInitialized reports whether a repository with an initial commit was created.
	VCSInitialized bool
	// RolledBack reports whether a partially created root was removed.
	RolledBack bool
}

// NewProject runs the full scaffold pipeline: validate the name, compute the
// plan, materialize it, provision the environment, and initialize the
// repository. The pipeline is a single run-to-completion sequence; nothing is
// retried.
//
// Rollback policy: a materialization failure removes the partially created
// root (unless KeepOnFailure). Provisioning and VCS failures leave the tree
// on disk, since user-visible project content exists by then.
func NewProject(ctx context.Context, opts NewProjectOptions) (*NewProjectResult, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	runner := opts.Runner
	if runner == nil {
		runner = execx.NewRealRunner()
	}
	writer := opts.Writer
	if writer == nil {
		writer = scaffold.NewFileWriter()
	}
	baseDir := opts.BaseDir
	if baseDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, NewAppError(ValidationFailed, "failed to determine working directory", err)
		}
		baseDir = cwd
	}

	spec, err := scaffold.Validate(opts.Name, opts.Profile, baseDir)
	if err != nil {
		return nil, NewAppError(ValidationFailed, "invalid project name", err)
	}
	log.Debug("validated project spec", "name", spec.Name, "package", spec.PackageName,
		"profile", spec.Profile.String(), "root", spec.Root)

	plan, err := scaffold.BuildPlan(spec, buildOptions(spec, cfg))
	if err != nil {
		return nil, NewAppError(PlanFailed, "failed to compute scaffold plan", err)
	}

	result := &NewProjectResult{Spec: spec, Plan: plan}

	if opts.DryRun {
		return result, nil
	}

	matResult := scaffold.NewMaterializer(writer).Materialize(plan, spec.Root)
	result.CreatedPaths = matResult.CreatedPaths
	if matResult.Err != nil {
		if !opts.KeepOnFailure && len(matResult.CreatedPaths) > 0 {
			if rbErr := scaffold.Rollback(spec.Root); rbErr != nil {
				log.Warn("rollback failed", "root", spec.Root, "err", rbErr)
			} else {
				result.RolledBack = true
			}
		}
		return result, NewAppError(MaterializeFailed, "failed to write project files", matResult.Err)
	}

	if !opts.SkipInstall {
		installer, err := provision.SelectInstaller(installerName(opts, cfg), runner)
		if err != nil {
			return result, NewAppError(ProvisionFailed, "failed to select installer", err)
		}

		envInfo, err := provision.Provision(ctx, runner, installer, provision.Options{
			Root:              spec.Root,
			Packages:          packagesFor(spec.Profile, cfg),
			WriteRequirements: spec.Profile == scaffold.ProfileMinimal,
		})
		if err != nil {
			// Scaffolded content stays on disk for the user to inspect.
			return result, NewAppError(ProvisionFailed, "failed to provision environment", err)
		}
		result.EnvInfo = envInfo
	}

	if !opts.SkipVCS {
		if err := vcs.Init(ctx, runner, spec.Root); err != nil {
			return result, NewAppError(VCSInitFailed, "failed to initialize repository", err)
		}
		result.VCSInitialized = true
	}

	return result, nil
}

// buildOptions derives manifest values from the configuration.
func buildOptions(spec *scaffold.ProjectSpec, cfg *config.Config) scaffold.BuildOptions {
	if spec.Profile != scaffold.ProfilePackaged {
		return scaffold.BuildOptions{}
	}
	return scaffold.BuildOptions{
		Dependencies:    cfg.Dependencies.Packaged,
		DevDependencies: cfg.Dependencies.Dev,
		PythonRequires:  strings.ReplaceAll(cfg.Python.Constraint, " ", ""),
	}
}

// packagesFor returns the package set installed for a profile.
func packagesFor(profile scaffold.Profile, cfg *config.Config) []string {
	if profile == scaffold.ProfilePackaged {
		pkgs := make([]string, 0, len(cfg.Dependencies.Packaged)+len(cfg.Dependencies.Dev))
		pkgs = append(pkgs, cfg.Dependencies.Packaged...)
		pkgs = append(pkgs, cfg.Dependencies.Dev...)
		return pkgs
	}
	return cfg.Dependencies.Minimal
}

// installerName resolves the installer strategy name from options and config.
func installerName(opts NewProjectOptions, cfg *config.Config) string {
	if opts.Installer != "" {
		return opts.Installer
	}
	return cfg.Defaults.Installer
}
