package service

import (
	"context"

	"github.com/bankapp/investment-club/internal/core/domain"
	"github.com/bankapp/investment-club/internal/core/ports"
)

// SummaryService computes the dashboard figures. It reads through the other
// services and never writes.
type SummaryService struct {
	clients     ports.ClientDirectory
	investments ports.InvestmentService
	env
}

var _ ports.SummaryService = (*SummaryService)(nil)

func NewSummaryService(clients ports.ClientDirectory, investments ports.InvestmentService, opts ...Option) *SummaryService {
	return &SummaryService{clients: clients, investments: investments, env: newEnv(opts)}
}

func (s *SummaryService) AdminSummary(ctx context.Context) (*ports.AdminSummary, error) {
	clients, err := s.clients.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	invs, err := s.investments.List(ctx)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, inv := range invs {
		if inv.Status == domain.StatusActive {
			active++
		}
	}
	return &ports.AdminSummary{
		ClientCount:       len(clients),
		ActiveInvestments: active,
		TotalInvested:     domain.SumAmounts(invs),
		TotalProjected:    domain.SumProjected(invs),
	}, nil
}

func (s *SummaryService) ClientSummary(ctx context.Context, userID string) (*ports.ClientSummary, error) {
	invs, err := s.investments.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views, err := s.Views(ctx, invs)
	if err != nil {
		return nil, err
	}
	return &ports.ClientSummary{
		UserID:         userID,
		TotalInvested:  domain.SumAmounts(invs),
		TotalProjected: domain.SumProjected(invs),
		Investments:    views,
	}, nil
}

// View attaches duration, progress as of now, and projection to an investment.
func (s *SummaryService) View(inv domain.Investment) ports.InvestmentView {
	return ports.InvestmentView{
		Investment:      inv,
		DurationDays:    domain.DurationDays(inv.StartDate, inv.EndDate),
		PercentComplete: domain.PercentComplete(inv.StartDate, inv.EndDate, s.now()),
		Projected:       inv.Projected(),
	}
}

// Views is View over a list, with each owner's name resolved through the
// client directory. Owners that are not registered clients are shown as
// domain.UnknownClientName.
func (s *SummaryService) Views(ctx context.Context, invs []domain.Investment) ([]ports.InvestmentView, error) {
	views := make([]ports.InvestmentView, len(invs))
	if len(invs) == 0 {
		return views, nil
	}

	clients, err := s.clients.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(clients))
	for _, u := range clients {
		names[u.ID] = u.FullName
	}

	for i, inv := range invs {
		v := s.View(inv)
		v.ClientName = domain.UnknownClientName
		if name, ok := names[inv.UserID]; ok {
			v.ClientName = name
		}
		views[i] = v
	}
	return views, nil
}
