package cli

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bankapp/investment-club/internal/app"
	"github.com/bankapp/investment-club/internal/infrastructure/config"
)

// ErrVolatileStore is returned when clubctl is pointed at a store that does
// not outlive the process. Every clubctl run is its own process, so changes
// made against such a store would vanish on exit.
var ErrVolatileStore = errors.New("the memory store does not persist between clubctl runs; set STORE_DRIVER to redis or mongo")

// OpenDurable builds the application from cfg and refuses backends that lose
// their data when the process exits.
func OpenDurable(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app.App, error) {
	if cfg.Store.Driver == config.DriverMemory || cfg.Store.Driver == "" {
		return nil, ErrVolatileStore
	}
	return app.New(ctx, cfg, log)
}
