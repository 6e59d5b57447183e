package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/edu-consultancy/internal/errs"
	"github.com/deppfellow/edu-consultancy/internal/server"
)

// AdminRole is the Clerk organization role allowed to manage accounts.
const AdminRole = "org:admin"

// AuthMiddleware guards the write routes and the personal data routes with
// Clerk session tokens.
type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{server: s}
}

// unauthorized writes the same JSON body the global error handler would.
func (auth *AuthMiddleware) unauthorized(w http.ResponseWriter, r *http.Request) {
	body := errs.NewUnauthorizedError("Unauthorized", false)

	w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		auth.server.Logger.Error().Err(err).Str("function", "RequireAuth").Msg("failed to write JSON response")
		return
	}

	auth.server.Logger.Warn().
		Str("function", "RequireAuth").
		Str("path", r.URL.Path).
		Str("request_id", r.Header.Get(RequestIDHeader)).
		Msg("rejected request without a valid session token")
}

// RequireAuth verifies the bearer token and stores the user id, role and
// permissions in the echo context.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	verify := clerkhttp.WithHeaderAuthorization(
		clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(auth.unauthorized)),
	)

	return echo.WrapMiddleware(verify)(func(c echo.Context) error {
		start := time.Now()

		claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
		if !ok {
			auth.server.Logger.Error().
				Str("function", "RequireAuth").
				Str("request_id", GetRequestID(c)).
				Dur("duration", time.Since(start)).
				Msg("could not get session claims from context")
			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		c.Set(UserIDKey, claims.Subject)
		c.Set(UserRoleKey, claims.ActiveOrganizationRole)
		c.Set(PermissionsKey, claims.Claims.ActiveOrganizationPermissions)

		auth.server.Logger.Debug().
			Str("function", "RequireAuth").
			Str("user_id", claims.Subject).
			Str("request_id", GetRequestID(c)).
			Dur("duration", time.Since(start)).
			Msg("user authenticated")

		return next(c)
	})
}

// RequireRole rejects sessions whose active organization role is not role.
// It must run after RequireAuth.
func (auth *AuthMiddleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current, _ := c.Get(UserRoleKey).(string)
			if current != role {
				GetLogger(c).Warn().
					Str("required_role", role).
					Str("user_role", current).
					Msg("rejected request without the required role")
				return errs.NewForbiddenError("Forbidden", false)
			}
			return next(c)
		}
	}
}
