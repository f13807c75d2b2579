package service

import (
	"time"

	"github.com/google/uuid"
)

// Option customises the clock and id source of a service.
type Option func(*env)

type env struct {
	now   func() time.Time
	newID func() string
}

// WithClock replaces time.Now as the source of timestamps and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(e *env) { e.now = now }
}

// WithIDGenerator replaces the random UUID generator for new records.
func WithIDGenerator(newID func() string) Option {
	return func(e *env) { e.newID = newID }
}

func newEnv(opts []Option) env {
	e := env{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
