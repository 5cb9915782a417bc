package scaffold

import "fmt"

// ValidationErrorType categorizes project name validation failures.
type ValidationErrorType int

const (
	// EmptyName indicates the name was empty or whitespace-only.
	EmptyName ValidationErrorType = iota
	// UnsafeName indicates the name contains path separators, traversal
	// segments, or characters illegal in a filesystem path.
	UnsafeName
	// InvalidPackageName indicates the derived package name is not a valid
	// importable identifier for a profile that requires one.
	InvalidPackageName
	// DirectoryExists indicates a directory with the given name already exists.
	DirectoryExists
)

// ValidationError represents a project name validation failure.
type ValidationError struct {
	// Type categorizes the error.
	Type ValidationErrorType
	// Name is the offending raw name.
	Name string
	// Message is the error message.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %q", e.Message, e.Name)
	}
	return e.Message
}

// NewValidationError creates a new ValidationError.
func NewValidationError(typ ValidationErrorType, name, message string) *ValidationError {
	return &ValidationError{
		Type:    typ,
		Name:    name,
		Message: message,
	}
}

// MaterializeErrorType categorizes filesystem materialization failures.
type MaterializeErrorType int

const (
	// RootCreationFailed indicates the project root directory could not be created.
	RootCreationFailed MaterializeErrorType = iota
	// DirectoryCreateFailed indicates a planned directory could not be created.
	DirectoryCreateFailed
	// FileWriteFailed indicates a planned file could not be written.
	FileWriteFailed
)

// MaterializeError represents a failure while writing a plan to disk.
type MaterializeError struct {
	// Type categorizes the error.
	Type MaterializeErrorType
	// Path is the offending filesystem path.
	Path string
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *MaterializeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (path: %s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s (path: %s)", e.Message, e.Path)
}

// Unwrap returns the underlying cause error.
func (e *MaterializeError) Unwrap() error {
	return e.Cause
}

// newMaterializeError creates a new MaterializeError.
func newMaterializeError(typ MaterializeErrorType, path, message string, cause error) *MaterializeError {
	return &MaterializeError{
		Type:    typ,
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// PlanError indicates an internal consistency violation in a computed plan.
// It should not occur for well-formed project specs.
type PlanError struct {
	// Message is the error message.
	Message string
	// Path is the plan entry that violated the invariant, if any.
	Path string
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid scaffold plan: %s (entry: %s)", e.Message, e.Path)
	}
	return fmt.Sprintf("invalid scaffold plan: %s", e.Message)
}
