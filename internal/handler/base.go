package handler

import (
	"io"
	"reflect"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/edu-consultancy/internal/middleware"
	"github.com/deppfellow/edu-consultancy/internal/server"
	"github.com/deppfellow/edu-consultancy/internal/validation"
)

// Handler carries the shared server resources. Concrete handlers embed it.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint. Req is a pointer to a request struct and
// arrives bound and validated.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

type HandlerFuncNoContent[Req validation.Validatable] func(c echo.Context, req Req) error

// FileResult is a stored file streamed back to the client.
type FileResult struct {
	Name        string
	ContentType string
	Body        io.ReadCloser
}

// ResponseHandler writes a successful result.
type ResponseHandler interface {
	Handle(c echo.Context, result interface{}) error
	GetOperation() string
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(*newrelic.Transaction, interface{}) {}

type NoContentResponseHandler struct {
	status int
}

func (h NoContentResponseHandler) Handle(c echo.Context, _ interface{}) error {
	return c.NoContent(h.status)
}

func (h NoContentResponseHandler) GetOperation() string {
	return "handler_no_content"
}

func (h NoContentResponseHandler) AddAttributes(*newrelic.Transaction, interface{}) {}

// FileResponseHandler streams a *FileResult inline so browsers render
// images directly. The body is always closed.
type FileResponseHandler struct {
	status int
}

func (h FileResponseHandler) Handle(c echo.Context, result interface{}) error {
	file := result.(*FileResult)
	defer file.Body.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, "inline; filename="+strconv.Quote(file.Name))
	return c.Stream(h.status, file.ContentType, file.Body)
}

func (h FileResponseHandler) GetOperation() string {
	return "handler_file"
}

func (h FileResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if file, ok := result.(*FileResult); ok && txn != nil {
		txn.AddAttribute("file.name", file.Name)
		txn.AddAttribute("file.content_type", file.ContentType)
	}
}

// newRequest returns a fresh copy of the registered request template, so
// concurrent requests never share a payload. Values preset on the template
// (such as upload limits) carry over.
func newRequest[Req any](template Req) Req {
	v := reflect.ValueOf(template)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return template
	}
	clone := reflect.New(v.Elem().Type())
	clone.Elem().Set(v.Elem())
	return clone.Interface().(Req)
}

// recordPhase annotates the New Relic transaction with the outcome of one
// request phase ("validation" or "handler").
func recordPhase(txn *newrelic.Transaction, phase string, elapsed time.Duration, err error) {
	if txn == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failed"
		txn.NoticeError(nrpkgerrors.Wrap(err))
	}
	txn.AddAttribute(phase+".status", status)
	txn.AddAttribute(phase+".duration_ms", elapsed.Milliseconds())
}

// handleRequest binds and validates req, runs handler and writes the
// result. Errors are returned untouched for the global error handler.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", c.Path())
	}
	log := middleware.GetLogger(c).With().Str("operation", responseHandler.GetOperation()).Logger()

	bindStart := time.Now()
	err := validation.BindAndValidate(c, req)
	bindTime := time.Since(bindStart)
	recordPhase(txn, "validation", bindTime, err)
	if err != nil {
		log.Debug().Err(err).Dur("validation_duration", bindTime).Msg("rejected request payload")
		return err
	}

	runStart := time.Now()
	result, err := handler(c, req)
	runTime := time.Since(runStart)
	recordPhase(txn, "handler", runTime, err)
	if err != nil {
		return err
	}

	if txn != nil {
		responseHandler.AddAttributes(txn, result)
	}
	log.Debug().
		Dur("validation_duration", bindTime).
		Dur("handler_duration", runTime).
		Msg("request handled")

	return responseHandler.Handle(c, result)
}

// Handle registers a typed endpoint that answers with JSON. req is a
// template; every request gets its own copy.
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newRequest(req), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleFile registers an endpoint that streams a stored file.
func HandleFile[Req validation.Validatable](
	h Handler,
	handler HandlerFunc[Req, *FileResult],
	status int,
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newRequest(req), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, FileResponseHandler{status: status})
	}
}

// HandleNoContent registers an endpoint without a response body.
func HandleNoContent[Req validation.Validatable](
	h Handler,
	handler HandlerFuncNoContent[Req],
	status int,
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newRequest(req), func(c echo.Context, req Req) (interface{}, error) {
			return nil, handler(c, req)
		}, NoContentResponseHandler{status: status})
	}
}
