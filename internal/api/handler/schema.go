package handler

import (
	"time"

	"github.com/bankapp/investment-club/internal/core/domain"
)

// dateLayout is the calendar-date format investment dates travel in.
const dateLayout = "2006-01-02"

// ErrorResponse is the standard error envelope returned on all 4xx/5xx responses.
type ErrorResponse struct {
	Error  string         `json:"error"`
	Notice *domain.Notice `json:"notice,omitempty"`
}

// --- Auth ---

type registerRequest struct {
	Email              string  `json:"email"              validate:"required,email"`
	Password           string  `json:"password"           validate:"required,min=6"`
	ConfirmPassword    string  `json:"confirmPassword"    validate:"required,eqfield=Password"`
	FullName           string  `json:"fullName"           validate:"required"`
	Phone              string  `json:"phone"              validate:"required"`
	IntendedInvestment float64 `json:"intendedInvestment" validate:"gte=0"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse is a stored user without its password.
type userResponse struct {
	ID                 string      `json:"id"`
	Email              string      `json:"email"`
	FullName           string      `json:"fullName"`
	Phone              string      `json:"phone,omitempty"`
	IntendedInvestment float64     `json:"intendedInvestment"`
	Role               domain.Role `json:"role"`
	CreatedAt          time.Time   `json:"createdAt"`
}

type sessionResponse struct {
	UserID    string      `json:"userId"`
	Role      domain.Role `json:"role"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

type registerResponse struct {
	User   userResponse  `json:"user"`
	Notice domain.Notice `json:"notice"`
}

type loginResponse struct {
	Token    string          `json:"token"`
	User     userResponse    `json:"user"`
	Session  sessionResponse `json:"session"`
	Redirect string          `json:"redirect"`
}

type meResponse struct {
	User    userResponse    `json:"user"`
	Session sessionResponse `json:"session"`
}

// --- Investments ---

type createInvestmentRequest struct {
	UserID       string  `json:"userId"       validate:"required"`
	Amount       float64 `json:"amount"       validate:"gt=0"`
	InterestRate float64 `json:"interestRate" validate:"gte=0"`
	StartDate    string  `json:"startDate"    validate:"required,datetime=2006-01-02"`
	EndDate      string  `json:"endDate"      validate:"required,datetime=2006-01-02"`
	Status       string  `json:"status"       validate:"omitempty,oneof=pending active completed"`
}

type updateInvestmentRequest struct {
	UserID       *string  `json:"userId"       validate:"omitempty,min=1"`
	Amount       *float64 `json:"amount"       validate:"omitempty,gt=0"`
	InterestRate *float64 `json:"interestRate" validate:"omitempty,gte=0"`
	StartDate    *string  `json:"startDate"    validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string  `json:"endDate"      validate:"omitempty,datetime=2006-01-02"`
	Status       *string  `json:"status"       validate:"omitempty,oneof=pending active completed"`
}

type investmentResponse struct {
	ID                 string                  `json:"id"`
	UserID             string                  `json:"userId"`
	ClientName         string                  `json:"clientName"`
	Amount             float64                 `json:"amount"`
	AmountFormatted    string                  `json:"amountFormatted"`
	InterestRate       float64                 `json:"interestRate"`
	StartDate          string                  `json:"startDate"`
	EndDate            string                  `json:"endDate"`
	Status             domain.InvestmentStatus `json:"status"`
	CreatedAt          time.Time               `json:"createdAt"`
	DurationDays       int                     `json:"durationDays"`
	PercentComplete    int                     `json:"percentComplete"`
	ProjectedReturn    string                  `json:"projectedReturn"`
	ProjectedFormatted string                  `json:"projectedReturnFormatted"`
}

type mutationResponse struct {
	Investment investmentResponse `json:"investment"`
	Notice     domain.Notice      `json:"notice"`
}

// --- Summaries ---

type adminSummaryResponse struct {
	ClientCount             int    `json:"clientCount"`
	ActiveInvestments       int    `json:"activeInvestments"`
	TotalInvested           string `json:"totalInvested"`
	TotalInvestedFormatted  string `json:"totalInvestedFormatted"`
	TotalProjected          string `json:"totalProjected"`
	TotalProjectedFormatted string `json:"totalProjectedFormatted"`
}

type clientSummaryResponse struct {
	UserID                  string               `json:"userId"`
	TotalInvested           string               `json:"totalInvested"`
	TotalInvestedFormatted  string               `json:"totalInvestedFormatted"`
	TotalProjected          string               `json:"totalProjected"`
	TotalProjectedFormatted string               `json:"totalProjectedFormatted"`
	Investments             []investmentResponse `json:"investments"`
}

type clientDetailResponse struct {
	Client  userResponse          `json:"client"`
	Summary clientSummaryResponse `json:"summary"`
}
