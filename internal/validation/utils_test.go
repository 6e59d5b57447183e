package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/edu-consultancy/internal/errs"
)

type signupRequest struct {
	Username string  `json:"username" validate:"required,min=3"`
	Email    string  `json:"email" validate:"required,email"`
	Age      int     `json:"age" validate:"gte=18"`
	Rating   float64 `json:"rating" validate:"lte=5"`
}

func (r *signupRequest) Validate() error {
	return Struct(r)
}

type customRequest struct {
	Code string `json:"code"`
}

func (r *customRequest) Validate() error {
	if r.Code != "ok" {
		return CustomValidationErrors{{Field: "code", Message: "must be ok"}}
	}
	return nil
}

type selfBinding struct {
	called bool
	err    error
}

func (r *selfBinding) Bind(echo.Context) error {
	r.called = true
	return r.err
}

func (r *selfBinding) Validate() error { return nil }

func jsonContext(body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidate_OK(t *testing.T) {
	req := &signupRequest{}
	err := BindAndValidate(jsonContext(`{"username":"jane","email":"jane@example.com","age":20}`), req)
	require.NoError(t, err)
	assert.Equal(t, "jane", req.Username)
}

func TestBindAndValidate_FieldErrors(t *testing.T) {
	err := BindAndValidate(jsonContext(`{"username":"jo","email":"nope","age":3,"rating":9}`), &signupRequest{})
	httpErr := asHTTPError(t, err)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "username", Error: "must be at least 3 characters"},
		{Field: "email", Error: "must be a valid email address"},
		{Field: "age", Error: "must be at least 18"},
		{Field: "rating", Error: "must not exceed 5"},
	}, httpErr.Errors)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	err := BindAndValidate(jsonContext(`{"username":`), &signupRequest{})
	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	err := BindAndValidate(jsonContext(`{"code":"bad"}`), &customRequest{})
	httpErr := asHTTPError(t, err)
	assert.Equal(t, []errs.FieldError{{Field: "code", Error: "must be ok"}}, httpErr.Errors)
}

func TestBindAndValidate_RequestBinder(t *testing.T) {
	req := &selfBinding{}
	require.NoError(t, BindAndValidate(jsonContext(`not json at all`), req))
	assert.True(t, req.called)

	conflict := errs.NewConflictError("taken", true, nil)
	err := BindAndValidate(jsonContext(``), &selfBinding{err: conflict})
	assert.Same(t, conflict, asHTTPError(t, err))
}
