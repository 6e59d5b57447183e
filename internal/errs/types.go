// Package errs defines the error shapes returned to API clients.
//
// Every failure a handler returns ends up as an *HTTPError: a status, a
// stable machine-readable code and a message, optionally with per-field
// validation errors and a client action hint.
package errs

import (
	"errors"
	"strings"
)

// FieldError is a validation problem attached to one request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType names something the client is asked to do next.
type ActionType string

const (
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional instruction for the client, such as a redirect.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type rendered by the global error handler.
//
// Override marks messages that are safe to show to end users verbatim.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError, so errors.Is(err, &HTTPError{}) answers
// "is this already a client-facing error". Use HasCode to tell them apart.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of e carrying message.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	clone := *e
	clone.Message = message
	return &clone
}

// HasCode reports whether err wraps an *HTTPError with the given code.
func HasCode(err error, code string) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.Code == code
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
