package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentStatus represents the lifecycle state of an investment.
type InvestmentStatus string

const (
	StatusPending   InvestmentStatus = "pending"
	StatusActive    InvestmentStatus = "active"
	StatusCompleted InvestmentStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s InvestmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// Investment is a financial position owned by one user. UserID is not checked
// against the users collection.
type Investment struct {
	ID           string           `json:"id"`
	UserID       string           `json:"userId"`
	Amount       float64          `json:"amount"`
	InterestRate float64          `json:"interestRate"`
	StartDate    time.Time        `json:"startDate"`
	EndDate      time.Time        `json:"endDate"`
	Status       InvestmentStatus `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// Validate checks the invariants a stored investment must satisfy.
func (inv Investment) Validate() error {
	if !(inv.Amount > 0) || math.IsInf(inv.Amount, 1) {
		return fmt.Errorf("%w: amount must be a finite number greater than 0", ErrInvalidInvestment)
	}
	if !(inv.InterestRate >= 0) || math.IsInf(inv.InterestRate, 1) {
		return fmt.Errorf("%w: interest rate must be a finite, non-negative number", ErrInvalidInvestment)
	}
	if !inv.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInvestment, inv.Status)
	}
	return nil
}

// InvestmentPatch carries the fields of a partial update. Nil fields are left
// untouched; id and creation time cannot be patched.
type InvestmentPatch struct {
	UserID       *string
	Amount       *float64
	InterestRate *float64
	StartDate    *time.Time
	EndDate      *time.Time
	Status       *InvestmentStatus
}

// Apply returns a copy of inv with the non-nil patch fields laid over it.
func (p InvestmentPatch) Apply(inv Investment) Investment {
	if p.UserID != nil {
		inv.UserID = *p.UserID
	}
	if p.Amount != nil {
		inv.Amount = *p.Amount
	}
	if p.InterestRate != nil {
		inv.InterestRate = *p.InterestRate
	}
	if p.StartDate != nil {
		inv.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		inv.EndDate = *p.EndDate
	}
	if p.Status != nil {
		inv.Status = *p.Status
	}
	return inv
}

const (
	day          = 24 * time.Hour
	daysPerYear  = 365
	powPrecision = 16
)

// DurationDays is the whole-day span between start and end, rounded up.
func DurationDays(start, end time.Time) int {
	return int(math.Ceil(float64(end.Sub(start)) / float64(day)))
}

// ProjectedReturn computes amount * (1 + rate/100) ^ (days/365), rounded to
// cents. A base the exponent cannot be applied to yields the principal, and
// a non-finite amount or rate yields zero.
func ProjectedReturn(amount, rate float64, start, end time.Time) decimal.Decimal {
	if !finite(amount) || !finite(rate) {
		return decimal.Zero
	}
	principal := decimal.NewFromFloat(amount)
	years := decimal.NewFromInt(int64(DurationDays(start, end))).
		Div(decimal.NewFromInt(daysPerYear))
	growth := decimal.NewFromInt(1).Add(decimal.NewFromFloat(rate).Div(decimal.NewFromInt(100)))

	factor, err := growth.PowWithPrecision(years, powPrecision)
	if err != nil {
		return principal.Round(2)
	}
	return principal.Mul(factor).Round(2)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Projected is the projected value of inv at its end date.
func (inv Investment) Projected() decimal.Decimal {
	return ProjectedReturn(inv.Amount, inv.InterestRate, inv.StartDate, inv.EndDate)
}

// PercentComplete is how far now sits between start and end, 0 to 100.
func PercentComplete(start, end, now time.Time) int {
	if now.Before(start) {
		return 0
	}
	if now.After(end) {
		return 100
	}
	total := end.Sub(start)
	if total <= 0 {
		return 100
	}
	return int(math.Round(float64(now.Sub(start)) / float64(total) * 100))
}
