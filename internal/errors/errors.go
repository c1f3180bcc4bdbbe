// Package errors provides structured error handling for the relpub CLI.
// It includes categorized errors with actionable remediation guidance.
package errors

import "fmt"

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument ErrorCategory = iota
	// Configuration errors are caused by invalid or missing configuration.
	Configuration
	// Artifact errors occur when required build artifacts are missing.
	Artifact
	// History errors occur when the release history file is missing or corrupt.
	History
	// Tool errors occur when an external command fails or is unavailable.
	Tool
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Artifact:
		return "Artifact Error"
	case History:
		return "History Error"
	case Tool:
		return "Tool Error"
	default:
		return "Error"
	}
}

// ExitCode returns the process exit status for the error category.
// These codes support programmatic composition and CI integration.
func (c ErrorCategory) ExitCode() int {
	switch c {
	case Argument:
		return 3
	case Configuration:
		return 3
	case Artifact:
		return 4
	case History:
		return 2
	case Tool:
		return 1
	default:
		return 1
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error (Argument, Artifact, etc.)
	Category ErrorCategory
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional, for argument errors).
	Usage string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewArgumentError creates a new argument error with the given message and remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentErrorWithUsage creates a new argument error that includes correct usage syntax.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArtifactError creates a new missing-artifact error.
func NewArtifactError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Artifact,
		Message:     message,
		Remediation: remediation,
	}
}

// NewHistoryError creates a new unreadable-history error.
func NewHistoryError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    History,
		Message:     message,
		Remediation: remediation,
	}
}

// NewToolError creates a new external-tool error.
func NewToolError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Tool,
		Message:     message,
		Remediation: remediation,
	}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
	}
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not a CLIError.
func AsCLIError(err error) *CLIError {
	cliErr, ok := err.(*CLIError)
	if ok {
		return cliErr
	}
	return nil
}
