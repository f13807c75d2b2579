package ports

import (
	"context"

	"github.com/bankapp/investment-club/internal/core/domain"
)

// Collection is a whole-array view of one stored collection. Every Read
// re-fetches from the backend; Write replaces the array.
type Collection[T any] interface {
	Read(ctx context.Context) ([]T, error)
	Write(ctx context.Context, records []T) error
	Clear(ctx context.Context) error
}

// CollectionStore hands out the three collections the services work on.
type CollectionStore interface {
	Users() Collection[domain.User]
	Investments() Collection[domain.Investment]
	Sessions() Collection[domain.Session]
}
