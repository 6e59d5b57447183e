package repository

import (
	"github.com/deppfellow/edu-consultancy/internal/server"
)

// Repositories groups every entity store so it can be handed to the
// service layer in one piece.
type Repositories struct {
	Blog     *BlogRepository
	Product  *ProductRepository
	Contact  *ContactRepository
	Feedback *FeedbackRepository
	User     *UserRepository
}

// NewRepositories builds the stores on top of the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return newRepositories(s.DB.Pool)
}

func newRepositories(db DBTX) *Repositories {
	return &Repositories{
		Blog:     NewBlogRepository(db),
		Product:  NewProductRepository(db),
		Contact:  NewContactRepository(db),
		Feedback: NewFeedbackRepository(db),
		User:     NewUserRepository(db),
	}
}
