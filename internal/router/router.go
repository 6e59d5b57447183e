// Package router builds the echo instance: global middleware, the system
// routes and the /api routes.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/edu-consultancy/internal/handler"
	"github.com/deppfellow/edu-consultancy/internal/middleware"
	"github.com/deppfellow/edu-consultancy/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mw := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	// RequestID runs before the logger and tracer that read it.
	router.Use(
		mw.Global.CORS(),
		mw.Global.Secure(),
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api", mw.RateLimit.Limiter())
	upload := mw.Global.UploadLimit()
	registerBlogRoutes(api, h.Blog, mw.Auth, upload)
	registerProductRoutes(api, h.Product, mw.Auth, upload)
	registerContactRoutes(api, h.Contact, mw.Auth)
	registerFeedbackRoutes(api, h.Feedback, mw.Auth)
	registerUserRoutes(api, h.User, mw.Auth)

	return router
}
