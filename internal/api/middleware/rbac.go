package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bankapp/investment-club/internal/core/domain"
)

// Guard decides whether the current session may enter a role's area.
type Guard interface {
	RequireRole(ctx context.Context, role domain.Role) (domain.Access, error)
}

type accessDenied struct {
	Error    string        `json:"error"`
	Notice   domain.Notice `json:"notice"`
	Redirect string        `json:"redirect"`
}

// RBAC admits only sessions holding role. Rejections carry the page the client
// should be sent to: the login page without a session, the caller's own home
// page on a role mismatch.
func RBAC(guard Guard, role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			access, err := guard.RequireRole(c.Request().Context(), role)
			if err != nil {
				return err
			}
			if access.Allowed {
				return next(c)
			}

			status, cause := http.StatusUnauthorized, domain.ErrUnauthenticated
			if access.Denied {
				status, cause = http.StatusForbidden, domain.ErrForbidden
			}
			notice, _ := domain.NoticeFor(cause)
			return c.JSON(status, accessDenied{
				Error:    cause.Error(),
				Notice:   notice,
				Redirect: access.Redirect,
			})
		}
	}
}
