package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bankapp/investment-club/internal/core/domain"
)

// AdminSummary backs the administrator dashboard cards.
type AdminSummary struct {
	ClientCount       int
	ActiveInvestments int
	TotalInvested     decimal.Decimal
	TotalProjected    decimal.Decimal
}

// InvestmentView is an investment with the figures the dashboards display.
type InvestmentView struct {
	domain.Investment
	ClientName      string
	DurationDays    int
	PercentComplete int
	Projected       decimal.Decimal
}

// ClientSummary backs the client dashboard.
type ClientSummary struct {
	UserID         string
	TotalInvested  decimal.Decimal
	TotalProjected decimal.Decimal
	Investments    []InvestmentView
}

// SummaryService aggregates users and investments for the dashboards.
type SummaryService interface {
	AdminSummary(ctx context.Context) (*AdminSummary, error)
	ClientSummary(ctx context.Context, userID string) (*ClientSummary, error)
	View(inv domain.Investment) InvestmentView
	Views(ctx context.Context, invs []domain.Investment) ([]InvestmentView, error)
}
