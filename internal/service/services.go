package service

import (
	"errors"

	"github.com/deppfellow/edu-consultancy/internal/lib/job"
	"github.com/deppfellow/edu-consultancy/internal/repository"
	"github.com/deppfellow/edu-consultancy/internal/server"
)

type Services struct {
	Auth     *AuthService
	Job      *job.JobService
	Blog     *BlogService
	Product  *ProductService
	Contact  *ContactService
	Feedback *FeedbackService
	User     *UserService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	if s.Files == nil {
		return nil, errors.New("file store is not initialized")
	}

	var jobs Enqueuer
	if s.Job != nil && s.Job.Client != nil {
		jobs = s.Job.Client
	}

	storage := s.Config.Storage
	logger := s.Logger

	return &Services{
		Auth:     NewAuthService(s),
		Job:      s.Job,
		Blog:     NewBlogService(repos.Blog, s.Files, storage.BlogFolder, storage.BaseURL, logger),
		Product:  NewProductService(repos.Product, s.Files, storage.ProductFolder, storage.BaseURL, logger),
		Contact:  NewContactService(repos.Contact, repos.User, jobs, logger),
		Feedback: NewFeedbackService(repos.Feedback, repos.User, jobs, logger),
		User:     NewUserService(repos.User, jobs, logger),
	}, nil
}
