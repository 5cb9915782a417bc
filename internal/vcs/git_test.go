package vcs

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/pystart-cli/pystart/internal/execx"
)

// recordedCall captures one stubbed command execution.
type recordedCall struct {
	Name string
	Args []string
	Dir  string
}

// stubRunner is a CommandRunner stub recording calls and replaying canned results.
type stubRunner struct {
	calls    []recordedCall
	failOn   string // first argument value that triggers a non-zero exit
	notFound bool
}

func (s *stubRunner) Run(ctx context.Context, name string, args []string, opts execx.RunOpts) (execx.CmdResult, error) {
	s.calls = append(s.calls, recordedCall{Name: name, Args: args, Dir: opts.Dir})
	if s.notFound {
		return execx.CmdResult{}, exec.ErrNotFound
	}
	if len(args) > 0 && args[0] == s.failOn {
		return execx.CmdResult{ExitCode: 128, Stderr: "fatal: simulated"}, nil
	}
	return execx.CmdResult{}, nil
}

func (s *stubRunner) LookPath(name string) bool {
	return !s.notFound
}

// TestInitSequence tests the git command sequence.
func TestInitSequence(t *testing.T) {
	runner := &stubRunner{}
	root := t.TempDir()

	if err := Init(context.Background(), runner, root); err != nil {
		t.Fatalf("Init error = %v", err)
	}

	want := []string{
		"init",
		"add -A",
		"commit -m " + InitialCommitMessage,
	}
	if len(runner.calls) != len(want) {
		t.Fatalf("got %d git calls, want %d", len(runner.calls), len(want))
	}
	for i, call := range runner.calls {
		if call.Name != "git" {
			t.Errorf("call %d tool = %q, want git", i, call.Name)
		}
		if got := strings.Join(call.Args, " "); got != want[i] {
			t.Errorf("call %d args = %q, want %q", i, got, want[i])
		}
		if call.Dir != root {
			t.Errorf("call %d ran in %q, want project root", i, call.Dir)
		}
	}
}

// TestInitGitMissing tests error mapping when git is not installed.
func TestInitGitMissing(t *testing.T) {
	runner := &stubRunner{notFound: true}

	err := Init(context.Background(), runner, t.TempDir())
	var toolErr *execx.ToolError
	if !errors.As(err, &toolErr) || toolErr.Type != execx.ToolNotFound {
		t.Fatalf("Init error = %v, want ToolNotFound", err)
	}
}

// TestInitCommandFails tests that a failing step stops the sequence.
func TestInitCommandFails(t *testing.T) {
	runner := &stubRunner{failOn: "add"}

	err := Init(context.Background(), runner, t.TempDir())
	var toolErr *execx.ToolError
	if !errors.As(err, &toolErr) || toolErr.Type != execx.ToolNonZeroExit {
		t.Fatalf("Init error = %v, want ToolNonZeroExit", err)
	}

	// No commit is attempted after staging fails.
	if len(runner.calls) != 2 {
		t.Errorf("got %d git calls after failure, want 2", len(runner.calls))
	}
}
