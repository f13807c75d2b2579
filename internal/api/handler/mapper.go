package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankapp/investment-club/internal/core/domain"
	"github.com/bankapp/investment-club/internal/core/ports"
)

// --- Request → Service input ---

func toRegisterInput(req registerRequest) ports.RegisterInput {
	return ports.RegisterInput{
		Email:              req.Email,
		Password:           req.Password,
		FullName:           req.FullName,
		Phone:              req.Phone,
		IntendedInvestment: req.IntendedInvestment,
	}
}

// toCreateInput expects a request that already passed validation, so the
// dates are known to parse.
func toCreateInput(req createInvestmentRequest) ports.CreateInvestmentInput {
	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)
	return ports.CreateInvestmentInput{
		UserID:       req.UserID,
		Amount:       req.Amount,
		InterestRate: req.InterestRate,
		StartDate:    start,
		EndDate:      end,
		Status:       domain.InvestmentStatus(req.Status),
	}
}

func toPatch(req updateInvestmentRequest) domain.InvestmentPatch {
	patch := domain.InvestmentPatch{
		UserID:       req.UserID,
		Amount:       req.Amount,
		InterestRate: req.InterestRate,
		StartDate:    parseDatePtr(req.StartDate),
		EndDate:      parseDatePtr(req.EndDate),
	}
	if req.Status != nil {
		status := domain.InvestmentStatus(*req.Status)
		patch.Status = &status
	}
	return patch
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

// --- Service result → HTTP response ---

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:                 u.ID,
		Email:              u.Email,
		FullName:           u.FullName,
		Phone:              u.Phone,
		IntendedInvestment: u.IntendedInvestment,
		Role:               u.Role,
		CreatedAt:          u.CreatedAt,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}

func toSessionResponse(s domain.Session) sessionResponse {
	return sessionResponse{UserID: s.UserID, Role: s.Role, ExpiresAt: s.ExpiresAt}
}

func toInvestmentResponse(v ports.InvestmentView) investmentResponse {
	return investmentResponse{
		ID:                 v.ID,
		UserID:             v.UserID,
		ClientName:         v.ClientName,
		Amount:             v.Amount,
		AmountFormatted:    domain.FormatAmount(decimal.NewFromFloat(v.Amount)),
		InterestRate:       v.InterestRate,
		StartDate:          v.StartDate.Format(dateLayout),
		EndDate:            v.EndDate.Format(dateLayout),
		Status:             v.Status,
		CreatedAt:          v.CreatedAt,
		DurationDays:       v.DurationDays,
		PercentComplete:    v.PercentComplete,
		ProjectedReturn:    v.Projected.StringFixed(2),
		ProjectedFormatted: domain.FormatAmount(v.Projected),
	}
}

func toInvestmentResponses(views []ports.InvestmentView) []investmentResponse {
	out := make([]investmentResponse, len(views))
	for i, v := range views {
		out[i] = toInvestmentResponse(v)
	}
	return out
}

func toAdminSummaryResponse(s *ports.AdminSummary) adminSummaryResponse {
	return adminSummaryResponse{
		ClientCount:             s.ClientCount,
		ActiveInvestments:       s.ActiveInvestments,
		TotalInvested:           s.TotalInvested.StringFixed(2),
		TotalInvestedFormatted:  domain.FormatAmount(s.TotalInvested),
		TotalProjected:          s.TotalProjected.StringFixed(2),
		TotalProjectedFormatted: domain.FormatAmount(s.TotalProjected),
	}
}

func toClientSummaryResponse(s *ports.ClientSummary) clientSummaryResponse {
	invs := toInvestmentResponses(s.Investments)
	return clientSummaryResponse{
		UserID:                  s.UserID,
		TotalInvested:           s.TotalInvested.StringFixed(2),
		TotalInvestedFormatted:  domain.FormatAmount(s.TotalInvested),
		TotalProjected:          s.TotalProjected.StringFixed(2),
		TotalProjectedFormatted: domain.FormatAmount(s.TotalProjected),
		Investments:             invs,
	}
}
