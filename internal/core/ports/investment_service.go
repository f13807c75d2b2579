package ports

import (
	"context"
	"time"

	"github.com/bankapp/investment-club/internal/core/domain"
)

// CreateInvestmentInput carries the fields an administrator fills in.
// An empty Status defaults to pending.
type CreateInvestmentInput struct {
	UserID       string
	Amount       float64
	InterestRate float64
	StartDate    time.Time
	EndDate      time.Time
	Status       domain.InvestmentStatus
}

// InvestmentService is the repository of investment records.
type InvestmentService interface {
	List(ctx context.Context) ([]domain.Investment, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Investment, error)
	Create(ctx context.Context, input CreateInvestmentInput) (*domain.Investment, error)
	Update(ctx context.Context, id string, patch domain.InvestmentPatch) (*domain.Investment, error)
	Delete(ctx context.Context, id string) (bool, error)
}
