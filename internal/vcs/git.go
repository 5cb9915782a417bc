// Package vcs initializes a git repository for a scaffolded project via
// execx.CommandRunner.
package vcs

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/pystart-cli/pystart/internal/execx"
)

// InitialCommitMessage is the fixed message of the first snapshot.
const InitialCommitMessage = "Initial project scaffold"

// Init creates a repository at root, stages everything, and records the
// initial commit. Any failure terminates the sequence without retry; the
// scaffolded files are left on disk.
func Init(ctx context.Context, r execx.CommandRunner, root string) error {
	steps := []struct {
		op   string
		args []string
	}{
		{"initialize repository", []string{"init"}},
		{"stage project files", []string{"add", "-A"}},
		{"create initial commit", []string{"commit", "-m", InitialCommitMessage}},
	}

	for _, step := range steps {
		log.Debug("git", "op", step.op, "root", root)
		result, err := r.Run(ctx, "git", step.args, execx.RunOpts{Dir: root})
		if err != nil {
			if execx.IsNotFound(err) {
				return execx.NewToolNotFoundError("git", step.op, err)
			}
			return fmt.Errorf("%s: %w", step.op, err)
		}
		if result.ExitCode != 0 {
			return execx.NewToolExitError("git", step.op, result.ExitCode, result.Stderr)
		}
	}

	return nil
}
