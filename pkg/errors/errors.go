package errors

import "net/http"

// AppError is a custom error type that includes an HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates a new AppError
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Common errors
var (
	ErrUnauthorized = NewAppError(http.StatusUnauthorized, "Unauthorized")
	ErrForbidden    = NewAppError(http.StatusForbidden, "Forbidden")
	ErrLinkNotFound = NewAppError(http.StatusNotFound, "Link not found")
	ErrAliasTaken   = NewAppError(http.StatusBadRequest, "Alias already taken")

	// Short-code space exhausted after the bounded retry loop gave up.
	// Fatal for the request, never retried further.
	ErrCodeSpaceExhausted = NewAppError(http.StatusInternalServerError, "Could not allocate a unique short code")

	ErrInternalServer = NewAppError(http.StatusInternalServerError, "Internal server error")
)

// Helper functions to create specific errors
func BadRequest(msg string) *AppError {
	return NewAppError(http.StatusBadRequest, msg)
}

func NotFound(msg string) *AppError {
	return NewAppError(http.StatusNotFound, msg)
}

func Forbidden(msg string) *AppError {
	return NewAppError(http.StatusForbidden, msg)
}

func Internal(msg string) *AppError {
	return NewAppError(http.StatusInternalServerError, msg)
}
