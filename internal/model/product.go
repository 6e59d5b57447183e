package model

import "sort"

// Product is a stored course or service offering.
type Product struct {
	ID          int64    `db:"id"`
	Title       string   `db:"title"`
	Description string   `db:"description"`
	Category    string   `db:"category"`
	Price       float64  `db:"price"`
	Rating      float64  `db:"rating"`
	Buyers      []string `db:"buyers"`
	Image       string   `db:"product_image"`
}

type ProductDTO struct {
	ProductID    int64    `json:"productId"`
	Title        string   `json:"title" validate:"required,max=255"`
	Description  string   `json:"description"`
	Category     string   `json:"category" validate:"max=100"`
	Price        float64  `json:"price" validate:"gte=0"`
	Rating       float64  `json:"rating" validate:"gte=0,lte=5"`
	Buyers       []string `json:"buyers"`
	ProductImage string   `json:"productImage"`
	ProductURL   string   `json:"productUrl"`
}

// ProductEntity is the URL segment of product images.
const ProductEntity = "product"

func (p *Product) ToDTO(baseURL string) ProductDTO {
	return ProductDTO{
		ProductID:    p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		Price:        p.Price,
		Rating:       p.Rating,
		Buyers:       BuyerSet(p.Buyers),
		ProductImage: p.Image,
		ProductURL:   FileURL(baseURL, ProductEntity, p.Image),
	}
}

// BuyerSet removes blanks and duplicates and sorts the result.
// It never returns nil so the JSON output is always an array.
func BuyerSet(buyers []string) []string {
	seen := make(map[string]struct{}, len(buyers))
	out := make([]string, 0, len(buyers))
	for _, b := range buyers {
		if b == "" {
			continue
		}
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}
