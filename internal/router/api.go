package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/edu-consultancy/internal/handler"
	"github.com/deppfellow/edu-consultancy/internal/middleware"
)

// Blog and product reads and their images are public; writes need a
// session. upload caps the multipart body and runs before authentication.
func registerBlogRoutes(api *echo.Group, h *handler.BlogHandler, auth *middleware.AuthMiddleware, upload echo.MiddlewareFunc) {
	blog := api.Group("/blog")
	blog.GET("/all", h.GetAllBlogs())
	blog.GET("/file/:fileName", h.ServeImage())
	blog.GET("/user/:userId", h.GetBlogsByUserID())
	blog.GET("/:id", h.GetBlog())

	blog.POST("/add-blog", h.AddBlog(), upload, auth.RequireAuth)
	blog.PUT("/update/:id", h.UpdateBlog(), upload, auth.RequireAuth)
	blog.DELETE("/delete/:id", h.DeleteBlog(), auth.RequireAuth)
}

func registerProductRoutes(api *echo.Group, h *handler.ProductHandler, auth *middleware.AuthMiddleware, upload echo.MiddlewareFunc) {
	product := api.Group("/product")
	product.GET("/all", h.GetAllProducts())
	product.GET("/file/:fileName", h.ServeImage())
	product.GET("/:id", h.GetProduct())

	product.POST("/add-product", h.AddProduct(), upload, auth.RequireAuth)
	product.PUT("/update/:id", h.UpdateProduct(), upload, auth.RequireAuth)
	product.DELETE("/delete/:id", h.DeleteProduct(), auth.RequireAuth)
}

func registerContactRoutes(api *echo.Group, h *handler.ContactHandler, auth *middleware.AuthMiddleware) {
	contacts := api.Group("/contacts", auth.RequireAuth)
	contacts.POST("", h.CreateContact())
	contacts.GET("", h.GetAllContacts())
	contacts.GET("/user/:userId", h.GetContactsByUserID())
	contacts.GET("/:id", h.GetContactByID())
	contacts.PUT("/:id", h.UpdateContact())
	contacts.DELETE("/:id", h.DeleteContact())
}

func registerFeedbackRoutes(api *echo.Group, h *handler.FeedbackHandler, auth *middleware.AuthMiddleware) {
	feedbacks := api.Group("/feedbacks", auth.RequireAuth)
	feedbacks.POST("", h.CreateFeedback())
	feedbacks.GET("", h.GetAllFeedbacks())
	feedbacks.GET("/user/:userId", h.GetFeedbacksByUserID())
	feedbacks.GET("/:id", h.GetFeedbackByID())
	feedbacks.PUT("/:id", h.UpdateFeedback())
	feedbacks.DELETE("/:id", h.DeleteFeedback())
}

// Registration is public; everything else about users needs a session, and
// changing a role needs an admin session.
func registerUserRoutes(api *echo.Group, h *handler.UserHandler, auth *middleware.AuthMiddleware) {
	api.POST("/users", h.CreateUser())

	users := api.Group("/users", auth.RequireAuth)
	users.GET("", h.GetAllUsers())
	users.GET("/:id", h.GetUserByID())
	users.PUT("/:id/role", h.UpdateUserRole(), auth.RequireRole(middleware.AdminRole))
	users.DELETE("/:id", h.DeleteUser())
}
