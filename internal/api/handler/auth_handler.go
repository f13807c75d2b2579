package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bankapp/investment-club/internal/api/metrics"
	"github.com/bankapp/investment-club/internal/core/domain"
	"github.com/bankapp/investment-club/internal/core/ports"
)

// TokenSigner turns a freshly issued session into a bearer token.
type TokenSigner func(domain.Session) (string, error)

type AuthHandler struct {
	authService ports.AuthService
	signToken   TokenSigner
}

func NewAuthHandler(authService ports.AuthService, signToken TokenSigner) *AuthHandler {
	return &AuthHandler{authService: authService, signToken: signToken}
}

// Register creates a new client account.
//
// @Summary      Register a new client
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration form"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), toRegisterInput(req))
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrDuplicateEmail) {
			result = "duplicate"
		}
		metrics.RegistrationsTotal.WithLabelValues(result).Inc()
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues("created").Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		User:   toUserResponse(*user),
		Notice: domain.Notice{Title: "Registration complete", Message: "You can now log in"},
	})
}

// Login authenticates the administrator or a client and returns a bearer
// token bound to the new session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	principal, session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrInvalidCredentials) {
			result = "invalid_credentials"
		}
		metrics.LoginsTotal.WithLabelValues("none", result).Inc()
		return err
	}

	token, err := h.signToken(*session)
	if err != nil {
		return err
	}
	metrics.LoginsTotal.WithLabelValues(string(principal.Role()), "success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Token:    token,
		User:     toUserResponse(principal.Profile()),
		Session:  toSessionResponse(*session),
		Redirect: domain.HomePath(principal.Role()),
	})
}

// Logout drops the current session.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the principal behind the current session.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	principal, err := h.authService.CurrentUser(ctx)
	if err != nil {
		return err
	}
	session, err := h.authService.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if principal == nil || session == nil {
		return domain.ErrUnauthenticated
	}

	return c.JSON(http.StatusOK, meResponse{
		User:    toUserResponse(principal.Profile()),
		Session: toSessionResponse(*session),
	})
}
