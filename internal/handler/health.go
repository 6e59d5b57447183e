package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deppfellow/edu-consultancy/internal/middleware"
	"github.com/deppfellow/edu-consultancy/internal/server"
)

const healthCheckTimeout = 5 * time.Second

// HealthHandler reports whether the API and its backing services are up.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(s)}
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// runCheck pings one dependency and records a New Relic event on failure.
func (h *HealthHandler) runCheck(ctx context.Context, logger zerolog.Logger, name string, ping func(context.Context) error) checkResult {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err == nil {
		logger.Debug().Str("check", name).Dur("response_time", elapsed).Msg("health check passed")
		return checkResult{Status: "healthy", ResponseTime: elapsed.String()}
	}

	logger.Error().Err(err).Str("check", name).Dur("response_time", elapsed).Msg("health check failed")
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
			"check_type":       name,
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
	}
	return checkResult{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
}

// CheckHealth answers 200 when the database is reachable and 503 when it
// is not. Redis only feeds the e-mail queue, so a failing Redis is
// reported without failing the check.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().Str("operation", "health_check").Logger()
	ctx := c.Request().Context()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]checkResult),
	}

	if h.server.DB != nil {
		response.Checks["database"] = h.runCheck(ctx, logger, "database", h.server.DB.Pool.Ping)
	}
	if h.server.Redis != nil {
		response.Checks["redis"] = h.runCheck(ctx, logger, "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	if db, ok := response.Checks["database"]; ok && db.Status != "healthy" {
		response.Status = "unhealthy"
		return c.JSON(http.StatusServiceUnavailable, response)
	}
	return c.JSON(http.StatusOK, response)
}
