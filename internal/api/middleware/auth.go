package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cloud-panel/admin-api/internal/api/metrics"
	"github.com/cloud-panel/admin-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "role"
)

// Auth requires a valid bearer token and injects the decoded identity
// into the request context. A missing or malformed header and a failed
// verification both halt the request with 401.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("failure").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()

			c.Set(ContextKeyUserID, identity.UserID)
			c.Set(ContextKeyRole, identity.Role)

			return next(c)
		}
	}
}
