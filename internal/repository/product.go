package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/edu-consultancy/internal/model"
)

const productColumns = `id, title, description, category, price, rating, buyers, COALESCE(product_image, '') AS product_image`

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*model.Product, bool, error) {
	product, found, err := queryOne[model.Product](ctx, r.db,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	if err != nil {
		return nil, false, fmt.Errorf("finding product %d: %w", id, err)
	}
	return product, found, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products, err := queryAll[model.Product](ctx, r.db, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

// Save inserts p when it has no id yet and updates it otherwise.
// Buyers are stored as a de-duplicated, sorted array.
func (r *ProductRepository) Save(ctx context.Context, p *model.Product) (*model.Product, error) {
	buyers := model.BuyerSet(p.Buyers)

	if p.ID == 0 {
		saved, err := mustReturn[model.Product](ctx, r.db, `
			INSERT INTO products (title, description, category, price, rating, buyers, product_image)
			VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
			RETURNING `+productColumns,
			p.Title, p.Description, p.Category, p.Price, p.Rating, buyers, p.Image)
		if err != nil {
			return nil, fmt.Errorf("inserting product: %w", err)
		}
		return saved, nil
	}

	saved, err := mustReturn[model.Product](ctx, r.db, `
		UPDATE products
		SET title = $2, description = $3, category = $4, price = $5, rating = $6, buyers = $7, product_image = NULLIF($8, '')
		WHERE id = $1
		RETURNING `+productColumns,
		p.ID, p.Title, p.Description, p.Category, p.Price, p.Rating, buyers, p.Image)
	if err != nil {
		return nil, fmt.Errorf("updating product %d: %w", p.ID, err)
	}
	return saved, nil
}

func (r *ProductRepository) Delete(ctx context.Context, p *model.Product) error {
	if err := deleteByID(ctx, r.db, "products", p.ID); err != nil {
		return fmt.Errorf("deleting product %d: %w", p.ID, err)
	}
	return nil
}
