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

type productService interface {
	AddProduct(ctx context.Context, dto model.ProductDTO, upload *filestore.Upload) (*model.ProductDTO, error)
	GetProduct(ctx context.Context, id int64) (*model.ProductDTO, error)
	GetAllProducts(ctx context.Context) ([]model.ProductDTO, error)
	UpdateProduct(ctx context.Context, id int64, dto model.ProductDTO, upload *filestore.Upload) (*model.ProductDTO, error)
	DeleteProduct(ctx context.Context, id int64) (string, error)
	OpenImage(ctx context.Context, fileName string) (io.ReadCloser, string, error)
}

type ProductHandler struct {
	Handler
	products productService
}

func NewProductHandler(s *server.Server, products productService) *ProductHandler {
	return &ProductHandler{Handler: NewHandler(s), products: products}
}

// AddProductRequest is the multipart form of POST /product/add-product:
// the product as JSON in "productDto" and the image in "file".
type AddProductRequest struct {
	Product model.ProductDTO
	File    *filestore.Upload

	maxUpload int64
}

func (r *AddProductRequest) Bind(c echo.Context) error {
	if err := parseForm(c, r.maxUpload); err != nil {
		return err
	}
	if err := jsonPart(c, &r.Product, "productDto"); err != nil {
		return err
	}
	file, err := readUpload(c, r.maxUpload)
	r.File = file
	return err
}

func (r *AddProductRequest) Validate() error {
	return validation.Struct(&r.Product)
}

// UpdateProductRequest is the multipart form of PUT /product/update/:id.
// The JSON part is read from "productDtoObj", then "productDto".
type UpdateProductRequest struct {
	ID      int64
	Product model.ProductDTO
	File    *filestore.Upload

	maxUpload int64
}

func (r *UpdateProductRequest) Bind(c echo.Context) error {
	if err := pathID(c, &r.ID); err != nil {
		return err
	}
	if err := parseForm(c, r.maxUpload); err != nil {
		return err
	}
	if err := jsonPart(c, &r.Product, "productDtoObj", "productDto"); err != nil {
		return err
	}
	file, err := readUpload(c, r.maxUpload)
	r.File = file
	return err
}

func (r *UpdateProductRequest) Validate() error {
	return validation.Struct(&r.Product)
}

func (h *ProductHandler) newAddRequest() *AddProductRequest {
	return &AddProductRequest{maxUpload: h.server.Config.Storage.MaxUploadSize}
}

func (h *ProductHandler) newUpdateRequest() *UpdateProductRequest {
	return &UpdateProductRequest{maxUpload: h.server.Config.Storage.MaxUploadSize}
}

func (h *ProductHandler) AddProduct() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *AddProductRequest) (*model.ProductDTO, error) {
		return h.products.AddProduct(c.Request().Context(), req.Product, req.File)
	}, http.StatusCreated, h.newAddRequest())
}

func (h *ProductHandler) GetAllProducts() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]model.ProductDTO, error) {
		return h.products.GetAllProducts(c.Request().Context())
	}, http.StatusOK, &EmptyRequest{})
}

func (h *ProductHandler) GetProduct() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (*model.ProductDTO, error) {
		return h.products.GetProduct(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})
}

func (h *ProductHandler) UpdateProduct() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *UpdateProductRequest) (*model.ProductDTO, error) {
		return h.products.UpdateProduct(c.Request().Context(), req.ID, req.Product, req.File)
	}, http.StatusOK, h.newUpdateRequest())
}

func (h *ProductHandler) DeleteProduct() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (Message, error) {
		msg, err := h.products.DeleteProduct(c.Request().Context(), req.ID)
		return Message{Message: msg}, err
	}, http.StatusOK, &IDRequest{})
}

func (h *ProductHandler) ServeImage() echo.HandlerFunc {
	return HandleFile(h.Handler, func(c echo.Context, req *FileRequest) (*FileResult, error) {
		body, contentType, err := h.products.OpenImage(c.Request().Context(), req.FileName)
		if err != nil {
			return nil, err
		}
		return &FileResult{Name: req.FileName, ContentType: contentType, Body: body}, nil
	}, http.StatusOK, &FileRequest{})
}
