package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bankapp/investment-club/internal/core/domain"
	"github.com/bankapp/investment-club/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub store
// ---------------------------------------------------------------------------

type stubCollection[T any] struct {
	records []T
	present bool
	writes  int
	clears  int
	readErr error
}

func (c *stubCollection[T]) Read(_ context.Context) ([]T, error) {
	if c.readErr != nil {
		return nil, c.readErr
	}
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out, nil
}

func (c *stubCollection[T]) Write(_ context.Context, records []T) error {
	c.writes++
	c.present = true
	c.records = make([]T, len(records))
	copy(c.records, records)
	return nil
}

func (c *stubCollection[T]) Clear(_ context.Context) error {
	c.clears++
	c.present = false
	c.records = nil
	return nil
}

type stubStore struct {
	users       *stubCollection[domain.User]
	investments *stubCollection[domain.Investment]
	sessions    *stubCollection[domain.Session]
}

func newStubStore() *stubStore {
	return &stubStore{
		users:       &stubCollection[domain.User]{},
		investments: &stubCollection[domain.Investment]{},
		sessions:    &stubCollection[domain.Session]{},
	}
}

func (s *stubStore) Users() ports.Collection[domain.User]             { return s.users }
func (s *stubStore) Investments() ports.Collection[domain.Investment] { return s.investments }
func (s *stubStore) Sessions() ports.Collection[domain.Session]       { return s.sessions }

// fakeClock is a settable clock for expiry tests.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// sequentialIDs returns id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
