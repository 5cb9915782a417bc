package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ValidationFailed indicates project name validation failed.
	ValidationFailed AppErrorType = iota
	// PlanFailed indicates scaffold plan computation failed.
	PlanFailed
	// MaterializeFailed indicates writing the scaffold to disk failed.
	MaterializeFailed
	// ProvisionFailed indicates environment provisioning failed.
	ProvisionFailed
	// VCSInitFailed indicates repository initialization failed.
	VCSInitFailed
	// ConfigLoadFailed indicates configuration loading failed.
	ConfigLoadFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}
