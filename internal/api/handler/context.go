package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cloud-panel/admin-api/internal/api/middleware"
	"github.com/cloud-panel/admin-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a populated user
// id and role prove the middleware ran for this request.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	userID, _ := c.Get(middleware.ContextKeyUserID).(string)
	role, _ := c.Get(middleware.ContextKeyRole).(domain.Role)
	if userID == "" || role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Identity{UserID: userID, Role: role}, nil
}
