package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type for report operations.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates invalid input parameters.
	// This is the only code allowed to surface to API callers as a
	// request rejection; everything else degrades.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeUserNotFound indicates the requested user does not exist.
	ErrCodeUserNotFound ErrorCode = "USER_NOT_FOUND"
	// ErrCodeStoreUnavailable indicates a storage failure.
	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	// ErrCodeLLMUnavailable indicates the generation service is not available.
	ErrCodeLLMUnavailable ErrorCode = "LLM_UNAVAILABLE"
	// ErrCodeDeliveryFailed indicates an outbound notification failure.
	ErrCodeDeliveryFailed ErrorCode = "DELIVERY_FAILED"
	// ErrCodeTimeout indicates the operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// ReportError represents a structured error for report operations.
type ReportError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ReportError) Unwrap() error {
	return e.Cause
}

// InvalidArgument creates an invalid argument error.
func InvalidArgument(msg string) *ReportError {
	return &ReportError{Code: ErrCodeInvalidArgument, Message: msg}
}

// UserNotFound creates a user not found error.
func UserNotFound(userID int32) *ReportError {
	return &ReportError{
		Code:    ErrCodeUserNotFound,
		Message: fmt.Sprintf("user not found: %d", userID),
	}
}

// StoreUnavailable wraps a storage failure.
func StoreUnavailable(msg string, cause error) *ReportError {
	return &ReportError{Code: ErrCodeStoreUnavailable, Message: msg, Cause: cause}
}

// DeliveryFailed wraps an outbound notification failure.
func DeliveryFailed(msg string, cause error) *ReportError {
	return &ReportError{Code: ErrCodeDeliveryFailed, Message: msg, Cause: cause}
}

// IsCode checks if an error carries a specific code.
func IsCode(err error, code ErrorCode) bool {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Code == code
	}
	return false
}
