package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bankapp/investment-club/internal/core/domain"
)

// Context keys set by Auth.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// SessionSource yields the single stored session.
type SessionSource interface {
	CurrentSession(ctx context.Context) (*domain.Session, error)
}

// Auth validates the bearer token and checks that it still describes the
// stored session. A later login replaces the session, so earlier tokens stop
// working even before they expire.
func Auth(jwtSecret string, sessions SessionSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := parseSession(jwtSecret, parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			session, err := sessions.CurrentSession(c.Request().Context())
			if err != nil {
				return err
			}
			if !claims.matches(session) {
				return domain.ErrUnauthenticated
			}

			c.Set(CtxUserID, session.UserID)
			c.Set(CtxRole, session.Role)

			return next(c)
		}
	}
}
