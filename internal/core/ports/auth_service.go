package ports

import (
	"context"

	"github.com/bankapp/investment-club/internal/core/domain"
)

// RegisterInput is the profile collected by the registration form.
type RegisterInput struct {
	Email              string
	Password           string
	FullName           string
	Phone              string
	IntendedInvestment float64
}

// AuthService owns registration, credentials and the single current session.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (domain.Principal, *domain.Session, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*domain.Session, error)
	CurrentUser(ctx context.Context) (domain.Principal, error)
	RequireRole(ctx context.Context, role domain.Role) (domain.Access, error)
}

// ClientDirectory exposes the stored clients to the administrator.
type ClientDirectory interface {
	ListClients(ctx context.Context) ([]domain.User, error)
	FindUser(ctx context.Context, id string) (*domain.User, error)
}
