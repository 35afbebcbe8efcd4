package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cloud-panel/admin-api/internal/core/domain"
)

// RBAC enforces role-based access control by set membership. Roles are
// compared for equality only; there is no privilege hierarchy.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyRole).(domain.Role)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
