package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/edu-consultancy/internal/model"
)

const blogColumns = `id, user_id, title, content, category, created_at, updated_at, COALESCE(blog_image, '') AS blog_image`

type BlogRepository struct {
	db DBTX
}

func NewBlogRepository(db DBTX) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) FindByID(ctx context.Context, id int64) (*model.Blog, bool, error) {
	blog, found, err := queryOne[model.Blog](ctx, r.db,
		`SELECT `+blogColumns+` FROM blogs WHERE id = $1`, id)
	if err != nil {
		return nil, false, fmt.Errorf("finding blog %d: %w", id, err)
	}
	return blog, found, nil
}

func (r *BlogRepository) FindAll(ctx context.Context) ([]model.Blog, error) {
	blogs, err := queryAll[model.Blog](ctx, r.db, `SELECT `+blogColumns+` FROM blogs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing blogs: %w", err)
	}
	return blogs, nil
}

func (r *BlogRepository) FindByUserID(ctx context.Context, userID int64) ([]model.Blog, error) {
	blogs, err := queryAll[model.Blog](ctx, r.db,
		`SELECT `+blogColumns+` FROM blogs WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing blogs of user %d: %w", userID, err)
	}
	return blogs, nil
}

// Save inserts b when it has no id yet and updates it otherwise.
func (r *BlogRepository) Save(ctx context.Context, b *model.Blog) (*model.Blog, error) {
	if b.ID == 0 {
		saved, err := mustReturn[model.Blog](ctx, r.db, `
			INSERT INTO blogs (user_id, title, content, category, created_at, updated_at, blog_image)
			VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
			RETURNING `+blogColumns,
			b.UserID, b.Title, b.Content, b.Category, b.CreatedAt, b.UpdatedAt, b.Image)
		if err != nil {
			return nil, fmt.Errorf("inserting blog: %w", err)
		}
		return saved, nil
	}

	saved, err := mustReturn[model.Blog](ctx, r.db, `
		UPDATE blogs
		SET user_id = $2, title = $3, content = $4, category = $5, updated_at = $6, blog_image = NULLIF($7, '')
		WHERE id = $1
		RETURNING `+blogColumns,
		b.ID, b.UserID, b.Title, b.Content, b.Category, b.UpdatedAt, b.Image)
	if err != nil {
		return nil, fmt.Errorf("updating blog %d: %w", b.ID, err)
	}
	return saved, nil
}

func (r *BlogRepository) Delete(ctx context.Context, b *model.Blog) error {
	if err := deleteByID(ctx, r.db, "blogs", b.ID); err != nil {
		return fmt.Errorf("deleting blog %d: %w", b.ID, err)
	}
	return nil
}
