package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studystack/classroom/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A
// missing role means the middleware did not run; reject rather than let a
// handler act on an empty identity.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	role, _ = c.Get("role").(domain.Role)
	if !role.Valid() {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
	}
	return userID, role, nil
}
