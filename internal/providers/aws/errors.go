package aws

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorCategory string

// Error categories for better error classification and handling
const (
	// ErrResourceNotFound is returned when a requested stack or detection doesn't exist
	ErrResourceNotFound ErrorCategory = "resource_not_found"

	// ErrPermissionDenied is returned when CloudFormation API access is denied
	ErrPermissionDenied ErrorCategory = "permission_denied"

	// ErrThrottling is returned when the CloudFormation API throttles the request
	ErrThrottling ErrorCategory = "request_throttled"

	// ErrConfigurationError is returned when there's an issue with AWS configuration
	ErrConfigurationError ErrorCategory = "configuration_error"

	// ErrNetworkError is returned for network-related errors accessing the AWS API
	ErrNetworkError ErrorCategory = "network_error"

	// ErrInvalidInput is returned when invalid input is provided
	ErrInvalidInput ErrorCategory = "invalid_input"

	// ErrInternalError is returned for unexpected internal errors
	ErrInternalError ErrorCategory = "internal_error"
)

// Error represents an error that occurred during CloudFormation operations with
// additional context about what went wrong.
type Error struct {
	// Category for programmatic error handling
	Category ErrorCategory

	// ResourceType identifies the resource kind (e.g., Stack, StackDriftDetection)
	ResourceType string

	// ResourceID identifies the specific stack name or detection ID when applicable
	ResourceID string

	// Message provides human-readable details
	Message string

	// Underlying is the wrapped cause of this error
	Underlying error
}

// Error returns a formatted error message
func (e *Error) Error() string {
	if e.ResourceID != "" {
		return fmt.Sprintf("%s: %s [resource: %s/%s]", e.Category, e.Message, e.ResourceType, e.ResourceID)
	}
	if e.ResourceType != "" {
		return fmt.Sprintf("%s: %s [resource type: %s]", e.Category, e.Message, e.ResourceType)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Underlying
}

// NewCloudFormationError creates a new error with the specified details
func NewCloudFormationError(category ErrorCategory, resourceType, resourceID, message string, underlying error) *Error {
	return &Error{
		Category:     category,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Message:      message,
		Underlying:   underlying,
	}
}

// IsErrorCategory checks if an error belongs to a specific error category
func IsErrorCategory(err error, category ErrorCategory) bool {
	if err == nil {
		return false
	}

	var cfnErr *Error
	if errors.As(err, &cfnErr) {
		return cfnErr.Category == category
	}

	return false
}

// ClassifyCloudFormationError classifies a CloudFormation API error based on
// its error code and context.
func ClassifyCloudFormationError(err error, resourceType, resourceID string) *Error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()

	switch {
	// CloudFormation reports a missing stack as a ValidationError whose message
	// says the stack "does not exist"; drift detection IDs get a not-found code.
	// Reference: https://docs.aws.amazon.com/AWSCloudFormation/latest/APIReference/CommonErrors.html
	case contains(errMsg, "does not exist") ||
		contains(errMsg, "StackNotFound") ||
		contains(errMsg, "NotFoundException"):
		return NewCloudFormationError(ErrResourceNotFound, resourceType, resourceID,
			"Resource not found", err)

	case contains(errMsg, "AccessDenied") ||
		contains(errMsg, "UnauthorizedOperation") ||
		contains(errMsg, "AuthFailure") ||
		contains(errMsg, "ExpiredToken"):
		return NewCloudFormationError(ErrPermissionDenied, resourceType, resourceID,
			"Access denied", err)

	case contains(errMsg, "Throttling") ||
		contains(errMsg, "RequestLimitExceeded") ||
		contains(errMsg, "TooManyRequests"):
		return NewCloudFormationError(ErrThrottling, resourceType, resourceID,
			"Request throttled", err)

	case contains(errMsg, "ValidationError") ||
		contains(errMsg, "InvalidParameter") ||
		contains(errMsg, "MalformedQueryString"):
		return NewCloudFormationError(ErrInvalidInput, resourceType, resourceID,
			"Invalid input", err)

		// Fall back to string-based analysis for non-standard errors
	case contains(errMsg, "no such host") ||
		contains(errMsg, "connection refused") ||
		contains(errMsg, "timeout"):
		return NewCloudFormationError(ErrNetworkError, resourceType, resourceID,
			"Network error while accessing AWS API", err)

	case contains(errMsg, "InvalidClientTokenId") ||
		contains(errMsg, "could not find region") ||
		contains(errMsg, "failed to retrieve credentials"):
		return NewCloudFormationError(ErrConfigurationError, resourceType, resourceID,
			"AWS SDK configuration error", err)

	default:
		return NewCloudFormationError(ErrInternalError, resourceType, resourceID,
			"Internal error occurred", err)
	}
}

// contains checks if the error message contains any of the provided substrings
func contains(s string, substrings ...string) bool {
	for _, substr := range substrings {
		if strings.Contains(strings.ToLower(s), strings.ToLower(substr)) {
			return true
		}
	}
	return false
}
