package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/deppfellow/edu-consultancy/internal/errs"
	"github.com/deppfellow/edu-consultancy/internal/lib/filestore"
	"github.com/deppfellow/edu-consultancy/internal/model"
)

type ProductService struct {
	products ProductStore
	images   imageFolder
	baseURL  string
	logger   *zerolog.Logger
}

func NewProductService(products ProductStore, files filestore.FileStore, folder, baseURL string, logger *zerolog.Logger) *ProductService {
	return &ProductService{
		products: products,
		images:   imageFolder{files: files, folder: folder},
		baseURL:  baseURL,
		logger:   logger,
	}
}

func (s *ProductService) toDTO(p *model.Product) *model.ProductDTO {
	dto := p.ToDTO(s.baseURL)
	return &dto
}

func (s *ProductService) AddProduct(ctx context.Context, dto model.ProductDTO, upload *filestore.Upload) (*model.ProductDTO, error) {
	image, err := s.images.add(ctx, upload)
	if err != nil {
		return nil, err
	}

	saved, err := s.products.Save(ctx, &model.Product{
		Title:       dto.Title,
		Description: dto.Description,
		Category:    dto.Category,
		Price:       dto.Price,
		Rating:      dto.Rating,
		Buyers:      model.BuyerSet(dto.Buyers),
		Image:       image,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	loggerFrom(ctx, s.logger).Info().
		Int64("product_id", saved.ID).
		Str("image", saved.Image).
		Msg("product created")

	return s.toDTO(saved), nil
}

func (s *ProductService) find(ctx context.Context, id int64) (*model.Product, error) {
	p, found, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %d: %w", id, err)
	}
	if !found {
		return nil, errs.ProductNotFound(id)
	}
	return p, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*model.ProductDTO, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDTO(p), nil
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]model.ProductDTO, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	out := make([]model.ProductDTO, 0, len(products))
	for i := range products {
		out = append(out, products[i].ToDTO(s.baseURL))
	}
	return out, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int64, dto model.ProductDTO, upload *filestore.Upload) (*model.ProductDTO, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Title = dto.Title
	p.Description = dto.Description
	p.Category = dto.Category
	p.Price = dto.Price
	p.Rating = dto.Rating
	p.Buyers = model.BuyerSet(dto.Buyers)

	if p.Image, err = s.images.replace(ctx, s.logger, p.Image, upload); err != nil {
		return nil, err
	}

	saved, err := s.products.Save(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return s.toDTO(saved), nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) (string, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}

	s.images.remove(ctx, s.logger, p.Image)

	if err := s.products.Delete(ctx, p); err != nil {
		return "", fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return fmt.Sprintf("Product deleted with id = %d", id), nil
}

func (s *ProductService) OpenImage(ctx context.Context, fileName string) (io.ReadCloser, string, error) {
	return s.images.open(ctx, fileName)
}
