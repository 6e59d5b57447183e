package errs

import (
	"net/http"
)

func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

func newError(status int, message string, override bool, code *string) *HTTPError {
	formatted := statusCode(status)
	if code != nil {
		formatted = *code
	}
	return &HTTPError{
		Code:     formatted,
		Message:  message,
		Status:   status,
		Override: override,
	}
}

// NewUnauthorizedError creates a 401.
func NewUnauthorizedError(message string, override bool) *HTTPError {
	return newError(http.StatusUnauthorized, message, override, nil)
}

// NewForbiddenError creates a 403.
func NewForbiddenError(message string, override bool) *HTTPError {
	return newError(http.StatusForbidden, message, override, nil)
}

// NewBadRequestError creates a 400. A nil code defaults to BAD_REQUEST.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	e := newError(http.StatusBadRequest, message, override, code)
	e.Errors = errors
	e.Action = action
	return e
}

// NewNotFoundError creates a 404. A nil code defaults to NOT_FOUND.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	return newError(http.StatusNotFound, message, override, code)
}

// NewConflictError creates a 409. A nil code defaults to CONFLICT.
func NewConflictError(message string, override bool, code *string) *HTTPError {
	return newError(http.StatusConflict, message, override, code)
}

// NewPayloadTooLargeError creates a 413.
func NewPayloadTooLargeError(message string) *HTTPError {
	return newError(http.StatusRequestEntityTooLarge, message, true, nil)
}

// NewInternalServerError creates a 500 that never leaks the cause.
func NewInternalServerError() *HTTPError {
	return newError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), false, nil)
}

// ValidationError wraps a validation failure as a 400.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil, nil)
}

// NewTooManyRequestsError creates a 429.
func NewTooManyRequestsError(message string) *HTTPError {
	return newError(http.StatusTooManyRequests, message, true, nil)
}
