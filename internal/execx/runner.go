// Package execx provides a stub-friendly interface for running external commands.
package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/charmbracelet/log"
	"github.com/kballard/go-shellquote"
)

// CmdResult holds the result of a command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	Dir string            // working directory (optional)
	Env map[string]string // extra environment variables (overlay)
}

// CommandRunner is the interface for running external commands.
// Implementations must be safe for stubbing in tests.
type CommandRunner interface {
	// Run executes a command and returns the result.
	// Returns CmdResult with ExitCode set if the process exits (even non-zero).
	// Returns error only for execution failures (binary not found, ctx canceled, io failure).
	Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error)

	// LookPath reports whether the named binary is available on PATH.
	LookPath(name string) bool
}

// RealRunner is the production implementation of CommandRunner using os/exec.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes the command and captures stdout/stderr.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	log.Debug("exec", "cmd", shellquote.Join(append([]string{name}, args...)...), "dir", opts.Dir)

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	err := cmd.Run()

	result := CmdResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		// Process ran but exited non-zero
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		// Binary not found, ctx canceled, io failure
		return result, err
	}

	result.ExitCode = 0
	return result, nil
}

// LookPath reports whether the named binary is available on PATH.
func (r *RealRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// IsNotFound reports whether err indicates the binary was not found.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}
