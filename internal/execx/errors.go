package execx

import "fmt"

// ToolErrorType categorizes external tool failures.
type ToolErrorType int

const (
	// ToolNotFound indicates the external binary is not installed or not on PATH.
	ToolNotFound ToolErrorType = iota
	// ToolNonZeroExit indicates the tool ran but exited with a non-zero status.
	ToolNonZeroExit
)

// ToolError represents a failure of an external collaborator tool.
type ToolError struct {
	// Type categorizes the error.
	Type ToolErrorType
	// Tool is the binary name (e.g. "git", "uv", "python3").
	Tool string
	// Op describes the operation being attempted (e.g. "create virtual environment").
	Op string
	// ExitCode is the process exit code for ToolNonZeroExit.
	ExitCode int
	// Stderr is the captured standard error output, if any.
	Stderr string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	switch e.Type {
	case ToolNotFound:
		return fmt.Sprintf("%s: %s not found (is it installed and on PATH?)", e.Op, e.Tool)
	default:
		if e.Stderr != "" {
			return fmt.Sprintf("%s: %s exited with code %d: %s", e.Op, e.Tool, e.ExitCode, e.Stderr)
		}
		return fmt.Sprintf("%s: %s exited with code %d", e.Op, e.Tool, e.ExitCode)
	}
}

// Unwrap returns the underlying cause error.
func (e *ToolError) Unwrap() error {
	return e.Cause
}

// NewToolNotFoundError creates a ToolError for a missing binary.
func NewToolNotFoundError(tool, op string, cause error) *ToolError {
	return &ToolError{
		Type:  ToolNotFound,
		Tool:  tool,
		Op:    op,
		Cause: cause,
	}
}

// NewToolExitError creates a ToolError for a non-zero exit.
func NewToolExitError(tool, op string, exitCode int, stderr string) *ToolError {
	return &ToolError{
		Type:     ToolNonZeroExit,
		Tool:     tool,
		Op:       op,
		ExitCode: exitCode,
		Stderr:   stderr,
	}
}
