package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bankapp/investment-club/internal/api/middleware"
	"github.com/bankapp/investment-club/internal/core/domain"
)

// ctxIdentity extracts the session identity injected by the Auth middleware.
// A missing user id means the middleware did not run.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	role, _ = c.Get(middleware.CtxRole).(domain.Role)
	if userID == "" || role == "" {
		return "", "", domain.ErrUnauthenticated
	}
	return userID, role, nil
}
