package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/edu-consultancy/internal/errs"
	"github.com/deppfellow/edu-consultancy/internal/model"
)

func newProductService() (*ProductService, *mockProductStore, *mockFileStore) {
	products := &mockProductStore{}
	files := &mockFileStore{}
	return NewProductService(products, files, "product", testBaseURL, nopLogger()), products, files
}

func storedProduct() *model.Product {
	return &model.Product{
		ID: 4, Title: "IELTS Prep", Description: "8 week course", Category: "language",
		Price: 199, Rating: 4.5, Buyers: []string{"alice"}, Image: "ielts.png",
	}
}

func TestProductService_AddProduct(t *testing.T) {
	svc, products, files := newProductService()

	files.On("Exists", mock.Anything, "product/ielts.png").Return(false, nil).Once()
	files.On("UploadFile", mock.Anything, "product", "ielts.png").Return("ielts.png", nil).Once()
	products.On("Save", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.ID == 0 && p.Title == "IELTS Prep" && p.Image == "ielts.png" &&
			assert.ObjectsAreEqual([]string{"alice", "bob"}, p.Buyers)
	})).Return(storedProduct(), nil).Once()

	dto, err := svc.AddProduct(context.Background(), model.ProductDTO{
		Title: "IELTS Prep", Price: 199, Rating: 4.5, Buyers: []string{"bob", "alice", "bob"},
	}, newUpload("ielts.png"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), dto.ProductID)
	assert.Equal(t, testBaseURL+"/product/file/ielts.png", dto.ProductURL)
	products.AssertExpectations(t)
}

func TestProductService_AddProduct_FileExists(t *testing.T) {
	svc, products, files := newProductService()

	files.On("Exists", mock.Anything, "product/ielts.png").Return(true, nil).Once()

	_, err := svc.AddProduct(context.Background(), model.ProductDTO{Title: "IELTS Prep"}, newUpload("ielts.png"))
	assert.True(t, errs.HasCode(err, errs.CodeFileExists))
	files.AssertNumberOfCalls(t, "UploadFile", 0)
	products.AssertNumberOfCalls(t, "Save", 0)
}

func TestProductService_UpdateProduct(t *testing.T) {
	svc, products, files := newProductService()

	products.On("FindByID", mock.Anything, int64(4)).Return(storedProduct(), true, nil).Once()
	files.On("Exists", mock.Anything, "product/toefl.png").Return(false, nil).Once()
	files.On("DeleteIfExists", mock.Anything, "product/ielts.png").Return(true, nil).Once()
	files.On("UploadFile", mock.Anything, "product", "toefl.png").Return("toefl.png", nil).Once()
	products.On("Save", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.ID == 4 && p.Title == "TOEFL Prep" && p.Price == 149 && p.Rating == 4 &&
			p.Description == "" && p.Image == "toefl.png" && len(p.Buyers) == 0
	})).Return(&model.Product{ID: 4, Title: "TOEFL Prep", Price: 149, Rating: 4, Image: "toefl.png"}, nil).Once()

	dto, err := svc.UpdateProduct(context.Background(), 4,
		model.ProductDTO{Title: "TOEFL Prep", Price: 149, Rating: 4}, newUpload("toefl.png"))
	require.NoError(t, err)
	assert.Equal(t, "toefl.png", dto.ProductImage)
	assert.NotNil(t, dto.Buyers)
	files.AssertExpectations(t)
}

func TestProductService_UpdateProduct_NameTaken(t *testing.T) {
	svc, products, files := newProductService()

	products.On("FindByID", mock.Anything, int64(4)).Return(storedProduct(), true, nil).Once()
	files.On("Exists", mock.Anything, "product/toefl.png").Return(true, nil).Once()

	_, err := svc.UpdateProduct(context.Background(), 4, model.ProductDTO{Title: "TOEFL Prep"}, newUpload("toefl.png"))
	assert.True(t, errs.HasCode(err, errs.CodeFileExists))
	files.AssertNumberOfCalls(t, "DeleteIfExists", 0)
	files.AssertNumberOfCalls(t, "UploadFile", 0)
	products.AssertNumberOfCalls(t, "Save", 0)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	svc, products, files := newProductService()

	products.On("FindByID", mock.Anything, int64(8)).Return(nil, false, nil).Once()

	_, err := svc.UpdateProduct(context.Background(), 8, model.ProductDTO{Title: "x"}, nil)
	assert.True(t, errs.HasCode(err, errs.CodeProductNotFound))
	assert.Equal(t, "Product not found with id = 8", err.Error())
	files.AssertNumberOfCalls(t, "UploadFile", 0)
}

func TestProductService_DeleteProduct(t *testing.T) {
	svc, products, files := newProductService()
	ctx := context.Background()

	products.On("FindByID", mock.Anything, int64(4)).Return(storedProduct(), true, nil).Once()
	products.On("FindByID", mock.Anything, int64(4)).Return(nil, false, nil).Once()
	files.On("DeleteIfExists", mock.Anything, "product/ielts.png").Return(false, nil).Once()
	products.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()

	msg, err := svc.DeleteProduct(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Product deleted with id = 4", msg)

	_, err = svc.DeleteProduct(ctx, 4)
	assert.True(t, errs.HasCode(err, errs.CodeProductNotFound))
	products.AssertNumberOfCalls(t, "Delete", 1)
}

func TestProductService_GetAllProducts_Empty(t *testing.T) {
	svc, products, _ := newProductService()

	products.On("FindAll", mock.Anything).Return([]model.Product{}, nil).Once()

	all, err := svc.GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}
