package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/edu-consultancy/internal/errs"
	"github.com/deppfellow/edu-consultancy/internal/lib/filestore"
	"github.com/deppfellow/edu-consultancy/internal/model"
)

type BlogService struct {
	blogs   BlogStore
	images  imageFolder
	baseURL string
	logger  *zerolog.Logger
	now     func() time.Time
}

func NewBlogService(blogs BlogStore, files filestore.FileStore, folder, baseURL string, logger *zerolog.Logger) *BlogService {
	return &BlogService{
		blogs:   blogs,
		images:  imageFolder{files: files, folder: folder},
		baseURL: baseURL,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *BlogService) toDTO(b *model.Blog) *model.BlogDTO {
	dto := b.ToDTO(s.baseURL)
	return &dto
}

// AddBlog stores the image, then the post. An image name that is already
// taken fails with FileExists before anything is written.
func (s *BlogService) AddBlog(ctx context.Context, dto model.BlogDTO, upload *filestore.Upload) (*model.BlogDTO, error) {
	image, err := s.images.add(ctx, upload)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	saved, err := s.blogs.Save(ctx, &model.Blog{
		UserID:    dto.UserID,
		Title:     dto.Title,
		Content:   dto.Content,
		Category:  dto.Category,
		CreatedAt: now,
		UpdatedAt: now,
		Image:     image,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save blog: %w", err)
	}

	loggerFrom(ctx, s.logger).Info().
		Int64("blog_id", saved.ID).
		Str("image", saved.Image).
		Msg("blog created")

	return s.toDTO(saved), nil
}

func (s *BlogService) find(ctx context.Context, id int64) (*model.Blog, error) {
	b, found, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load blog %d: %w", id, err)
	}
	if !found {
		return nil, errs.BlogNotFound(id)
	}
	return b, nil
}

func (s *BlogService) GetBlog(ctx context.Context, id int64) (*model.BlogDTO, error) {
	b, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDTO(b), nil
}

func (s *BlogService) GetAllBlogs(ctx context.Context) ([]model.BlogDTO, error) {
	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	return s.toDTOs(blogs), nil
}

// GetBlogsByUserID lists the posts of one author, oldest first.
func (s *BlogService) GetBlogsByUserID(ctx context.Context, userID int64) ([]model.BlogDTO, error) {
	blogs, err := s.blogs.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs of user %d: %w", userID, err)
	}
	return s.toDTOs(blogs), nil
}

func (s *BlogService) toDTOs(blogs []model.Blog) []model.BlogDTO {
	out := make([]model.BlogDTO, 0, len(blogs))
	for i := range blogs {
		out = append(out, blogs[i].ToDTO(s.baseURL))
	}
	return out
}

// UpdateBlog replaces every mutable field. A supplied image replaces the
// stored one; without an image the current file name is kept.
func (s *BlogService) UpdateBlog(ctx context.Context, id int64, dto model.BlogDTO, upload *filestore.Upload) (*model.BlogDTO, error) {
	b, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	b.UserID = dto.UserID
	b.Title = dto.Title
	b.Content = dto.Content
	b.Category = dto.Category
	b.UpdatedAt = s.now().UTC()

	if b.Image, err = s.images.replace(ctx, s.logger, b.Image, upload); err != nil {
		return nil, err
	}

	saved, err := s.blogs.Save(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("failed to update blog %d: %w", id, err)
	}
	return s.toDTO(saved), nil
}

func (s *BlogService) DeleteBlog(ctx context.Context, id int64) (string, error) {
	b, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}

	s.images.remove(ctx, s.logger, b.Image)

	if err := s.blogs.Delete(ctx, b); err != nil {
		return "", fmt.Errorf("failed to delete blog %d: %w", id, err)
	}
	return fmt.Sprintf("Blog deleted with id = %d", id), nil
}

// OpenImage streams a stored blog image and reports its content type.
func (s *BlogService) OpenImage(ctx context.Context, fileName string) (io.ReadCloser, string, error) {
	return s.images.open(ctx, fileName)
}
