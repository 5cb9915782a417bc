// Package provision creates the project's isolated Python environment,
// installs the declared dependencies, and records environment info. All
// external tools are invoked through execx.CommandRunner so the package is
// fully testable with a stub runner.
package provision

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pystart-cli/pystart/internal/execx"
)

// EnvDirName is the virtual environment directory created inside the project root.
const EnvDirName = "venv"

// Installer is a dependency-installer strategy. Implementations wrap one
// external toolchain (uv, or python -m venv with pip).
type Installer interface {
	// Name is the strategy name as used on the command line.
	Name() string

	// Available reports whether the strategy's tool is on PATH.
	Available(r execx.CommandRunner) bool

	// CreateEnv creates the virtual environment inside root.
	CreateEnv(ctx context.Context, r execx.CommandRunner, root string) error

	// Install installs packages into the environment.
	Install(ctx context.Context, r execx.CommandRunner, root string, packages []string) error

	// Freeze exports the environment's installed package list.
	Freeze(ctx context.Context, r execx.CommandRunner, root string) ([]byte, error)
}

// SelectInstaller resolves an installer by name. "auto" prefers uv when it is
// on PATH and falls back to python -m venv.
func SelectInstaller(name string, r execx.CommandRunner) (Installer, error) {
	switch name {
	case "uv":
		return &UvInstaller{}, nil
	case "venv":
		return &VenvInstaller{}, nil
	case "", "auto":
		uv := &UvInstaller{}
		if uv.Available(r) {
			return uv, nil
		}
		return &VenvInstaller{}, nil
	default:
		return nil, fmt.Errorf("unknown installer: %q (available: auto, uv, venv)", name)
	}
}

// run executes one external tool call and maps failures to ToolError.
func run(ctx context.Context, r execx.CommandRunner, tool, op string, args []string, dir string) (execx.CmdResult, error) {
	result, err := r.Run(ctx, tool, args, execx.RunOpts{Dir: dir})
	if err != nil {
		if execx.IsNotFound(err) {
			return result, execx.NewToolNotFoundError(tool, op, err)
		}
		return result, fmt.Errorf("%s: %w", op, err)
	}
	if result.ExitCode != 0 {
		return result, execx.NewToolExitError(tool, op, result.ExitCode, result.Stderr)
	}
	return result, nil
}

// UvInstaller provisions environments with uv.
type UvInstaller struct{}

// Name returns "uv".
func (i *UvInstaller) Name() string { return "uv" }

// Available reports whether uv is on PATH.
func (i *UvInstaller) Available(r execx.CommandRunner) bool {
	return r.LookPath("uv")
}

// CreateEnv runs `uv venv` in the project root.
func (i *UvInstaller) CreateEnv(ctx context.Context, r execx.CommandRunner, root string) error {
	_, err := run(ctx, r, "uv", "create virtual environment", []string{"venv", EnvDirName}, root)
	return err
}

// Install runs `uv pip install` against the environment's interpreter.
func (i *UvInstaller) Install(ctx context.Context, r execx.CommandRunner, root string, packages []string) error {
	if len(packages) == 0 {
		return nil
	}
	args := append([]string{"pip", "install", "--python", InterpreterPath(root)}, packages...)
	_, err := run(ctx, r, "uv", "install dependencies", args, root)
	return err
}

// Freeze runs `uv pip freeze` against the environment's interpreter.
func (i *UvInstaller) Freeze(ctx context.Context, r execx.CommandRunner, root string) ([]byte, error) {
	args := []string{"pip", "freeze", "--python", InterpreterPath(root)}
	result, err := run(ctx, r, "uv", "export dependency list", args, root)
	if err != nil {
		return nil, err
	}
	return []byte(result.Stdout), nil
}

// VenvInstaller provisions environments with `python3 -m venv` and pip.
type VenvInstaller struct{}

// Name returns "venv".
func (i *VenvInstaller) Name() string { return "venv" }

// Available reports whether python3 is on PATH.
func (i *VenvInstaller) Available(r execx.CommandRunner) bool {
	return r.LookPath("python3")
}

// CreateEnv runs `python3 -m venv` in the project root.
func (i *VenvInstaller) CreateEnv(ctx context.Context, r execx.CommandRunner, root string) error {
	_, err := run(ctx, r, "python3", "create virtual environment", []string{"-m", "venv", EnvDirName}, root)
	return err
}

// Install runs the environment's own pip.
func (i *VenvInstaller) Install(ctx context.Context, r execx.CommandRunner, root string, packages []string) error {
	if len(packages) == 0 {
		return nil
	}
	pip := filepath.Join(root, EnvDirName, "bin", "pip")
	args := append([]string{"install"}, packages...)
	_, err := run(ctx, r, pip, "install dependencies", args, root)
	return err
}

// Freeze runs the environment's own pip freeze.
func (i *VenvInstaller) Freeze(ctx context.Context, r execx.CommandRunner, root string) ([]byte, error) {
	pip := filepath.Join(root, EnvDirName, "bin", "pip")
	result, err := run(ctx, r, pip, "export dependency list", []string{"freeze"}, root)
	if err != nil {
		return nil, err
	}
	return []byte(result.Stdout), nil
}

// InterpreterPath returns the absolute path of the environment's interpreter.
func InterpreterPath(root string) string {
	return filepath.Join(root, EnvDirName, "bin", "python")
}
