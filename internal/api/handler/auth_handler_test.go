package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bankapp/investment-club/internal/core/domain"
	"github.com/bankapp/investment-club/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (domain.Principal, *domain.Session, error)
	logoutFn   func(ctx context.Context) error
	principal  domain.Principal
	session    *domain.Session
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (domain.Principal, *domain.Session, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context) error {
	return s.logoutFn(ctx)
}

func (s *stubAuthService) CurrentSession(context.Context) (*domain.Session, error) {
	return s.session, nil
}

func (s *stubAuthService) CurrentUser(context.Context) (domain.Principal, error) {
	return s.principal, nil
}

func (s *stubAuthService) RequireRole(context.Context, domain.Role) (domain.Access, error) {
	return domain.Access{Allowed: true}, nil
}

func fixedToken(domain.Session) (string, error) { return "token123", nil }

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

const validRegistration = `{"email":"a@x.com","password":"secret1","confirmPassword":"secret1",` +
	`"fullName":"Alice","phone":"(11) 99999-0000","intendedInvestment":5000}`

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Email != "a@x.com" || in.FullName != "Alice" || in.IntendedInvestment != 5000 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "u-1", Email: in.Email, Password: in.Password, FullName: in.FullName, Role: domain.RoleClient}, nil
		},
	}
	handler := NewAuthHandler(stub, fixedToken)

	c, rec := jsonRequest(e, http.MethodPost, "/auth/register", validRegistration)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["id"] != "u-1" || user["role"] != "client" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password must not be returned")
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	handler := NewAuthHandler(stub, fixedToken)

	c, _ := jsonRequest(e, http.MethodPost, "/auth/register", validRegistration)
	if err := handler.Register(c); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	cases := map[string]string{
		"password mismatch": `{"email":"a@x.com","password":"secret1","confirmPassword":"other","fullName":"A","phone":"1"}`,
		"short password":    `{"email":"a@x.com","password":"123","confirmPassword":"123","fullName":"A","phone":"1"}`,
		"bad email":         `{"email":"nope","password":"secret1","confirmPassword":"secret1","fullName":"A","phone":"1"}`,
		"missing name":      `{"email":"a@x.com","password":"secret1","confirmPassword":"secret1","phone":"1"}`,
		"negative intent":   `{"email":"a@x.com","password":"secret1","confirmPassword":"secret1","fullName":"A","phone":"1","intendedInvestment":-1}`,
		"not json":          "not-json",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubAuthService{
				registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
					t.Fatalf("should not be called")
					return nil, nil
				},
			}
			c, _ := jsonRequest(e, http.MethodPost, "/auth/register", body)

			if code := httpCode(t, NewAuthHandler(stub, fixedToken).Register(c)); code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", code)
			}
		})
	}
}

func TestAuthHandler_Login_Admin(t *testing.T) {
	e := newTestEcho()
	expires := time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (domain.Principal, *domain.Session, error) {
			if email != domain.DefaultAdminEmail || password != domain.DefaultAdminPassword {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return domain.Admin{Email: email},
				&domain.Session{UserID: domain.AdminID, Role: domain.RoleAdmin, ExpiresAt: expires}, nil
		},
	}
	handler := NewAuthHandler(stub, fixedToken)

	body := `{"email":"` + domain.DefaultAdminEmail + `","password":"` + domain.DefaultAdminPassword + `"}`
	c, rec := jsonRequest(e, http.MethodPost, "/auth/login", body)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	if resp["redirect"] != domain.PathAdmin {
		t.Fatalf("expected admin redirect, got %v", resp["redirect"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["fullName"] != domain.AdminFullName || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (domain.Principal, *domain.Session, error) {
			return nil, nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, fixedToken)

	c, _ := jsonRequest(e, http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"bad"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (domain.Principal, *domain.Session, error) {
			t.Fatalf("should not be called")
			return nil, nil, nil
		},
	}
	handler := NewAuthHandler(stub, fixedToken)

	c, _ := jsonRequest(e, http.MethodPost, "/auth/login", "{")
	if code := httpCode(t, handler.Login(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newTestEcho()
	calls := 0
	stub := &stubAuthService{logoutFn: func(context.Context) error { calls++; return nil }}

	c, rec := jsonRequest(e, http.MethodPost, "/auth/logout", "")
	if err := NewAuthHandler(stub, fixedToken).Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || calls != 1 {
		t.Fatalf("expected 204 after one logout, got %d (%d calls)", rec.Code, calls)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newTestEcho()
	user := domain.User{ID: "u-1", Email: "a@x.com", Password: "secret1", Role: domain.RoleClient}
	stub := &stubAuthService{
		principal: domain.Client{User: user},
		session:   &domain.Session{UserID: "u-1", Role: domain.RoleClient},
	}

	c, rec := jsonRequest(e, http.MethodGet, "/auth/me", "")
	if err := NewAuthHandler(stub, fixedToken).Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret1") {
		t.Fatalf("password leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_NoSession(t *testing.T) {
	e := newTestEcho()
	c, _ := jsonRequest(e, http.MethodGet, "/auth/me", "")

	if err := NewAuthHandler(&stubAuthService{}, fixedToken).Me(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
