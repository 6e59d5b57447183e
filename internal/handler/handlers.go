package handler

import (
	"github.com/deppfellow/edu-consultancy/internal/server"
	"github.com/deppfellow/edu-consultancy/internal/service"
)

type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Blog     *BlogHandler
	Product  *ProductHandler
	Contact  *ContactHandler
	Feedback *FeedbackHandler
	User     *UserHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Blog:     NewBlogHandler(s, services.Blog),
		Product:  NewProductHandler(s, services.Product),
		Contact:  NewContactHandler(s, services.Contact),
		Feedback: NewFeedbackHandler(s, services.Feedback),
		User:     NewUserHandler(s, services.User),
	}
}
