package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeUnauthorized indicates a missing, malformed, expired, or
	// invalid-signature token, or wrong credentials. Rendered as HTTP 401.
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeForbidden indicates an authenticated principal whose role does
	// not permit the operation. Rendered as HTTP 403.
	ErrCodeForbidden ErrorCode = "forbidden"
	// ErrCodeBadRequest indicates malformed input (e.g., unparseable IDs).
	ErrCodeBadRequest ErrorCode = "bad_request"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeConflict indicates a conflict with existing data (e.g., unique
	// constraint violation on registration).
	ErrCodeConflict ErrorCode = "conflict"
	// ErrCodeHashing indicates a password-hashing failure: entropy source
	// unavailable or a corrupt stored digest. Rendered as HTTP 500 with a
	// generic message; the cause is only logged server-side.
	ErrCodeHashing ErrorCode = "hashing"
	// ErrCodeInternal indicates any other internal server error.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError is a structured application error with a code, message, and
// optional cause. It supports error wrapping for use with errors.Is/As.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Unauthorized creates a new Unauthorized error.
func Unauthorized(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message}
}

// Forbidden creates a new Forbidden error.
func Forbidden(message string) *AppError {
	return &AppError{Code: ErrCodeForbidden, Message: message}
}

// BadRequest creates a new BadRequest error.
func BadRequest(message string) *AppError {
	return &AppError{Code: ErrCodeBadRequest, Message: message}
}

// BadRequestf creates a new BadRequest error with formatted message.
func BadRequestf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a new Conflict error.
func Conflict(message string) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message}
}

// Hashing wraps a hashing failure. The message is what callers may show;
// the cause carries the cryptographic detail for server-side logs only.
func Hashing(err error, message string) *AppError {
	return &AppError{Code: ErrCodeHashing, Message: message, Cause: err}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsUnauthorized checks if an error is an Unauthorized error.
func IsUnauthorized(err error) bool {
	return isCode(err, ErrCodeUnauthorized)
}

// IsForbidden checks if an error is a Forbidden error.
func IsForbidden(err error) bool {
	return isCode(err, ErrCodeForbidden)
}

// IsBadRequest checks if an error is a BadRequest error.
func IsBadRequest(err error) bool {
	return isCode(err, ErrCodeBadRequest)
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsConflict checks if an error is a Conflict error.
func IsConflict(err error) bool {
	return isCode(err, ErrCodeConflict)
}

// IsHashing checks if an error is a Hashing error.
func IsHashing(err error) bool {
	return isCode(err, ErrCodeHashing)
}

// GetCode returns the ErrorCode from an error, or empty string if the error
// is not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
