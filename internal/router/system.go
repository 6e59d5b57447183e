package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/edu-consultancy/internal/handler"
)

// registerSystemRoutes mounts health and API docs outside /api so they are
// neither rate limited nor authenticated.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.Static("/static", "static")
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
