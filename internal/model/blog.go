package model

import "time"

// Blog is a stored blog post. Image is the stored filename, empty when the
// post has no image.
type Blog struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Category  string    `db:"category"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	Image     string    `db:"blog_image"`
}

// BlogDTO is the blog representation exchanged over HTTP.
// BlogURL is derived on every read and never stored.
type BlogDTO struct {
	BlogID    int64      `json:"blogId"`
	UserID    int64      `json:"userId" validate:"required,gt=0"`
	Title     string     `json:"title" validate:"required,max=255"`
	Content   string     `json:"content" validate:"required"`
	Category  string     `json:"category" validate:"max=100"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	BlogImage string     `json:"blogImage"`
	BlogURL   string     `json:"blogUrl"`
}

// BlogEntity is the URL segment of blog images.
const BlogEntity = "blog"

// ToDTO converts b, deriving the image URL from baseURL.
func (b *Blog) ToDTO(baseURL string) BlogDTO {
	createdAt, updatedAt := b.CreatedAt, b.UpdatedAt
	return BlogDTO{
		BlogID:    b.ID,
		UserID:    b.UserID,
		Title:     b.Title,
		Content:   b.Content,
		Category:  b.Category,
		CreatedAt: &createdAt,
		UpdatedAt: &updatedAt,
		BlogImage: b.Image,
		BlogURL:   FileURL(baseURL, BlogEntity, b.Image),
	}
}
