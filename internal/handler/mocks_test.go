package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/edu-consultancy/internal/config"
	"github.com/deppfellow/edu-consultancy/internal/errs"
	"github.com/deppfellow/edu-consultancy/internal/lib/filestore"
	"github.com/deppfellow/edu-consultancy/internal/middleware"
	"github.com/deppfellow/edu-consultancy/internal/model"
	"github.com/deppfellow/edu-consultancy/internal/server"
)

func testServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Storage: config.DefaultStorageConfig(),
		},
		Logger: &logger,
	}
}

// newEcho returns an echo instance using the production error handler.
func newEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	return e
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{B: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type part struct {
	field    string
	value    string
	fileName string
	content  []byte
}

func jsonValue(t *testing.T, field string, v any) part {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return part{field: field, value: string(raw)}
}

func filePart(name string, content []byte) part {
	return part{field: fileField, fileName: name, content: content}
}

func multipartRequest(t *testing.T, method, target string, parts ...part) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, p := range parts {
		if p.fileName != "" {
			fw, err := w.CreateFormFile(p.field, p.fileName)
			require.NoError(t, err)
			_, err = fw.Write(p.content)
			require.NoError(t, err)
			continue
		}
		require.NoError(t, w.WriteField(p.field, p.value))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, target string, v any) *http.Request {
	t.Helper()
	var body io.Reader
	if v != nil {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func noUpload() *filestore.Upload {
	return nil
}

type mockBlogs struct {
	mock.Mock
}

func (m *mockBlogs) AddBlog(ctx context.Context, dto model.BlogDTO, upload *filestore.Upload) (*model.BlogDTO, error) {
	args := m.Called(ctx, dto, upload)
	out, _ := args.Get(0).(*model.BlogDTO)
	return out, args.Error(1)
}

func (m *mockBlogs) GetBlog(ctx context.Context, id int64) (*model.BlogDTO, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.BlogDTO)
	return out, args.Error(1)
}

func (m *mockBlogs) GetAllBlogs(ctx context.Context) ([]model.BlogDTO, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.BlogDTO)
	return out, args.Error(1)
}

func (m *mockBlogs) GetBlogsByUserID(ctx context.Context, userID int64) ([]model.BlogDTO, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]model.BlogDTO)
	return out, args.Error(1)
}

func (m *mockBlogs) UpdateBlog(ctx context.Context, id int64, dto model.BlogDTO, upload *filestore.Upload) (*model.BlogDTO, error) {
	args := m.Called(ctx, id, dto, upload)
	out, _ := args.Get(0).(*model.BlogDTO)
	return out, args.Error(1)
}

func (m *mockBlogs) DeleteBlog(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockBlogs) OpenImage(ctx context.Context, fileName string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, fileName)
	out, _ := args.Get(0).(io.ReadCloser)
	return out, args.String(1), args.Error(2)
}

type mockProducts struct {
	mock.Mock
}

func (m *mockProducts) AddProduct(ctx context.Context, dto model.ProductDTO, upload *filestore.Upload) (*model.ProductDTO, error) {
	args := m.Called(ctx, dto, upload)
	out, _ := args.Get(0).(*model.ProductDTO)
	return out, args.Error(1)
}

func (m *mockProducts) GetProduct(ctx context.Context, id int64) (*model.ProductDTO, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.ProductDTO)
	return out, args.Error(1)
}

func (m *mockProducts) GetAllProducts(ctx context.Context) ([]model.ProductDTO, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.ProductDTO)
	return out, args.Error(1)
}

func (m *mockProducts) UpdateProduct(ctx context.Context, id int64, dto model.ProductDTO, upload *filestore.Upload) (*model.ProductDTO, error) {
	args := m.Called(ctx, id, dto, upload)
	out, _ := args.Get(0).(*model.ProductDTO)
	return out, args.Error(1)
}

func (m *mockProducts) DeleteProduct(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockProducts) OpenImage(ctx context.Context, fileName string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, fileName)
	out, _ := args.Get(0).(io.ReadCloser)
	return out, args.String(1), args.Error(2)
}

type mockContacts struct {
	mock.Mock
}

func (m *mockContacts) CreateContact(ctx context.Context, dto model.ContactDTO) (*model.ContactDTO, error) {
	args := m.Called(ctx, dto)
	out, _ := args.Get(0).(*model.ContactDTO)
	return out, args.Error(1)
}

func (m *mockContacts) GetContactByID(ctx context.Context, id int64) (*model.ContactDTO, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.ContactDTO)
	return out, args.Error(1)
}

func (m *mockContacts) GetAllContacts(ctx context.Context) ([]model.ContactDTO, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.ContactDTO)
	return out, args.Error(1)
}

func (m *mockContacts) GetContactsByUserID(ctx context.Context, userID int64) ([]model.ContactDTO, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]model.ContactDTO)
	return out, args.Error(1)
}

func (m *mockContacts) UpdateContact(ctx context.Context, id int64, dto model.ContactDTO) (*model.Contact, error) {
	args := m.Called(ctx, id, dto)
	out, _ := args.Get(0).(*model.Contact)
	return out, args.Error(1)
}

func (m *mockContacts) DeleteContact(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockFeedbacks struct {
	mock.Mock
}

func (m *mockFeedbacks) CreateFeedback(ctx context.Context, dto model.FeedbackDTO) (*model.FeedbackDTO, error) {
	args := m.Called(ctx, dto)
	out, _ := args.Get(0).(*model.FeedbackDTO)
	return out, args.Error(1)
}

func (m *mockFeedbacks) GetFeedbackByID(ctx context.Context, id int64) (*model.FeedbackDTO, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.FeedbackDTO)
	return out, args.Error(1)
}

func (m *mockFeedbacks) GetAllFeedbacks(ctx context.Context) ([]model.FeedbackDTO, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.FeedbackDTO)
	return out, args.Error(1)
}

func (m *mockFeedbacks) GetFeedbacksByUserID(ctx context.Context, userID int64) ([]model.FeedbackDTO, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]model.FeedbackDTO)
	return out, args.Error(1)
}

func (m *mockFeedbacks) UpdateFeedback(ctx context.Context, id int64, dto model.FeedbackDTO) (*model.Feedback, error) {
	args := m.Called(ctx, id, dto)
	out, _ := args.Get(0).(*model.Feedback)
	return out, args.Error(1)
}

func (m *mockFeedbacks) DeleteFeedback(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) CreateUser(ctx context.Context, dto model.CreateUserDTO) (*model.User, error) {
	args := m.Called(ctx, dto)
	out, _ := args.Get(0).(*model.User)
	return out, args.Error(1)
}

func (m *mockUsers) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.User)
	return out, args.Error(1)
}

func (m *mockUsers) GetAllUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.User)
	return out, args.Error(1)
}

func (m *mockUsers) UpdateUserRole(ctx context.Context, id int64, role model.Role) (*model.User, error) {
	args := m.Called(ctx, id, role)
	out, _ := args.Get(0).(*model.User)
	return out, args.Error(1)
}

func (m *mockUsers) DeleteUserByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
