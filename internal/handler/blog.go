package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/edu-consultancy/internal/lib/filestore"
	"github.com/deppfellow/edu-consultancy/internal/model"
	"github.com/deppfellow/edu-consultancy/internal/server"
	"github.com/deppfellow/edu-consultancy/internal/validation"
)

type blogService interface {
	AddBlog(ctx context.Context, dto model.BlogDTO, upload *filestore.Upload) (*model.BlogDTO, error)
	GetBlog(ctx context.Context, id int64) (*model.BlogDTO, error)
	GetAllBlogs(ctx context.Context) ([]model.BlogDTO, error)
	GetBlogsByUserID(ctx context.Context, userID int64) ([]model.BlogDTO, error)
	UpdateBlog(ctx context.Context, id int64, dto model.BlogDTO, upload *filestore.Upload) (*model.BlogDTO, error)
	DeleteBlog(ctx context.Context, id int64) (string, error)
	OpenImage(ctx context.Context, fileName string) (io.ReadCloser, string, error)
}

type BlogHandler struct {
	Handler
	blogs blogService
}

func NewBlogHandler(s *server.Server, blogs blogService) *BlogHandler {
	return &BlogHandler{Handler: NewHandler(s), blogs: blogs}
}

// AddBlogRequest is the multipart form of POST /blog/add-blog: the post as
// JSON in "blogDto" and the image in "file".
type AddBlogRequest struct {
	Blog model.BlogDTO
	File *filestore.Upload

	maxUpload int64
}

func (r *AddBlogRequest) Bind(c echo.Context) error {
	if err := parseForm(c, r.maxUpload); err != nil {
		return err
	}
	if err := jsonPart(c, &r.Blog, "blogDto"); err != nil {
		return err
	}
	file, err := readUpload(c, r.maxUpload)
	r.File = file
	return err
}

func (r *AddBlogRequest) Validate() error {
	return validation.Struct(&r.Blog)
}

// UpdateBlogRequest is the multipart form of PUT /blog/update/:id. The
// JSON part is read from "blogDtoObj", falling back to "blogDto"; the
// file is optional.
type UpdateBlogRequest struct {
	ID   int64
	Blog model.BlogDTO
	File *filestore.Upload

	maxUpload int64
}

func (r *UpdateBlogRequest) Bind(c echo.Context) error {
	if err := pathID(c, &r.ID); err != nil {
		return err
	}
	if err := parseForm(c, r.maxUpload); err != nil {
		return err
	}
	if err := jsonPart(c, &r.Blog, "blogDtoObj", "blogDto"); err != nil {
		return err
	}
	file, err := readUpload(c, r.maxUpload)
	r.File = file
	return err
}

func (r *UpdateBlogRequest) Validate() error {
	return validation.Struct(&r.Blog)
}

func (h *BlogHandler) newAddRequest() *AddBlogRequest {
	return &AddBlogRequest{maxUpload: h.server.Config.Storage.MaxUploadSize}
}

func (h *BlogHandler) newUpdateRequest() *UpdateBlogRequest {
	return &UpdateBlogRequest{maxUpload: h.server.Config.Storage.MaxUploadSize}
}

func (h *BlogHandler) AddBlog() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *AddBlogRequest) (*model.BlogDTO, error) {
		return h.blogs.AddBlog(c.Request().Context(), req.Blog, req.File)
	}, http.StatusCreated, h.newAddRequest())
}

func (h *BlogHandler) GetAllBlogs() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]model.BlogDTO, error) {
		return h.blogs.GetAllBlogs(c.Request().Context())
	}, http.StatusOK, &EmptyRequest{})
}

func (h *BlogHandler) GetBlogsByUserID() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *UserIDRequest) ([]model.BlogDTO, error) {
		return h.blogs.GetBlogsByUserID(c.Request().Context(), req.UserID)
	}, http.StatusOK, &UserIDRequest{})
}

func (h *BlogHandler) GetBlog() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*model.BlogDTO, error) {
		return h.blogs.GetBlog(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})
}

func (h *BlogHandler) UpdateBlog() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *UpdateBlogRequest) (*model.BlogDTO, error) {
		return h.blogs.UpdateBlog(c.Request().Context(), req.ID, req.Blog, req.File)
	}, http.StatusOK, h.newUpdateRequest())
}

func (h *BlogHandler) DeleteBlog() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (Message, error) {
		msg, err := h.blogs.DeleteBlog(c.Request().Context(), req.ID)
		return Message{Message: msg}, err
	}, http.StatusOK, &IDRequest{})
}

func (h *BlogHandler) ServeImage() echo.HandlerFunc {
	return HandleFile(h.Handler, func(c echo.Context, req *FileRequest) (*FileResult, error) {
		body, contentType, err := h.blogs.OpenImage(c.Request().Context(), req.FileName)
		if err != nil {
			return nil, err
		}
		return &FileResult{Name: req.FileName, ContentType: contentType, Body: body}, nil
	}, http.StatusOK, &FileRequest{})
}
