package detector

import (
	"errors"
	"fmt"
)

// Failure categories for a single stack workflow
const (
	// ErrStartFailed means drift detection could not be initiated for the stack
	ErrStartFailed = "start_failed"

	// ErrDetectionFailed means the gateway reported the detection itself failed
	ErrDetectionFailed = "detection_failed"

	// ErrPollTimeout means the polling attempt budget was exhausted while the
	// detection was still in progress
	ErrPollTimeout = "poll_timeout"

	// ErrInternal covers any other error raised inside a workflow
	ErrInternal = "internal_error"
)

// StackError represents a failure of one stack's detection workflow with
// additional context about what went wrong. It is always recoverable at the
// per-stack granularity; the batch never aborts because of one.
type StackError struct {
	// Category helps with programmatic error handling
	Category string

	// StackName identifies the stack whose workflow failed
	StackName string

	// Message provides human-readable details
	Message string

	// Underlying is the wrapped cause of this error
	Underlying error
}

// Error returns the error message
func (e *StackError) Error() string {
	if e.StackName != "" {
		return fmt.Sprintf("%s: %s (stack: %s)", e.Category, e.Message, e.StackName)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap returns the underlying error (for errors.Is/As support)
func (e *StackError) Unwrap() error {
	return e.Underlying
}

// NewStackError creates a new error with the given category and details
func NewStackError(category, stackName, message string, underlying error) *StackError {
	return &StackError{
		Category:   category,
		StackName:  stackName,
		Message:    message,
		Underlying: underlying,
	}
}

// IsErrorCategory checks if an error belongs to a specific failure category
func IsErrorCategory(err error, category string) bool {
	if err == nil {
		return false
	}

	var e *StackError
	if errors.As(err, &e) {
		return e.Category == category
	}

	return false
}
