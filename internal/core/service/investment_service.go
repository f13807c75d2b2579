package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bankapp/investment-club/internal/core/domain"
	"github.com/bankapp/investment-club/internal/core/ports"
)

// InvestmentService is the repository of investment records. Every call
// re-reads the whole collection; writes replace it.
type InvestmentService struct {
	store ports.CollectionStore
	log   zerolog.Logger
	env

	mu sync.Mutex
}

var _ ports.InvestmentService = (*InvestmentService)(nil)

func NewInvestmentService(store ports.CollectionStore, log zerolog.Logger, opts ...Option) *InvestmentService {
	return &InvestmentService{store: store, log: log, env: newEnv(opts)}
}

// List returns every investment in insertion order.
func (s *InvestmentService) List(ctx context.Context) ([]domain.Investment, error) {
	return s.store.Investments().Read(ctx)
}

// ListForUser returns the investments whose UserID equals userID exactly.
func (s *InvestmentService) ListForUser(ctx context.Context, userID string) ([]domain.Investment, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]domain.Investment, 0, len(all))
	for _, inv := range all {
		if inv.UserID == userID {
			owned = append(owned, inv)
		}
	}
	return owned, nil
}

func (s *InvestmentService) Create(ctx context.Context, in ports.CreateInvestmentInput) (*domain.Investment, error) {
	status := in.Status
	if status == "" {
		status = domain.StatusPending
	}
	inv := domain.Investment{
		UserID:       in.UserID,
		Amount:       in.Amount,
		InterestRate: in.InterestRate,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Status:       status,
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.store.Investments().Read(ctx)
	if err != nil {
		return nil, err
	}
	inv.ID = s.newID()
	inv.CreatedAt = s.now()
	if err := s.store.Investments().Write(ctx, append(all, inv)); err != nil {
		s.log.Error().Err(err).Msg("failed to create investment")
		return nil, err
	}

	s.log.Info().Str("investment_id", inv.ID).Str("user_id", inv.UserID).Msg("investment created")
	return &inv, nil
}

// Update merges patch over the stored record. The merged record must still be
// valid; on any failure the collection is left untouched.
func (s *InvestmentService) Update(ctx context.Context, id string, patch domain.InvestmentPatch) (*domain.Investment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.store.Investments().Read(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(all, id)
	if idx < 0 {
		return nil, domain.ErrInvestmentNotFound
	}

	updated := patch.Apply(all[idx])
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	all[idx] = updated
	if err := s.store.Investments().Write(ctx, all); err != nil {
		return nil, err
	}

	s.log.Info().Str("investment_id", id).Msg("investment updated")
	return &updated, nil
}

// Delete removes the investment with the given id and reports whether one
// was removed. Nothing is written when the id is unknown.
func (s *InvestmentService) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.store.Investments().Read(ctx)
	if err != nil {
		return false, err
	}
	idx := indexOf(all, id)
	if idx < 0 {
		return false, nil
	}

	kept := append(all[:idx:idx], all[idx+1:]...)
	if err := s.store.Investments().Write(ctx, kept); err != nil {
		return false, err
	}

	s.log.Info().Str("investment_id", id).Msg("investment deleted")
	return true, nil
}

func indexOf(invs []domain.Investment, id string) int {
	for i, inv := range invs {
		if inv.ID == id {
			return i
		}
	}
	return -1
}
