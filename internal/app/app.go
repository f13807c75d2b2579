// Package app assembles the storage backend and core services from
// configuration. Both the HTTP server and the admin CLI start from here.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bankapp/investment-club/internal/core/domain"
	"github.com/bankapp/investment-club/internal/core/ports"
	"github.com/bankapp/investment-club/internal/core/service"
	"github.com/bankapp/investment-club/internal/infrastructure/config"
	mongodb "github.com/bankapp/investment-club/internal/infrastructure/db/mongo"
	redisdb "github.com/bankapp/investment-club/internal/infrastructure/db/redis"
	"github.com/bankapp/investment-club/internal/infrastructure/storage"
	"github.com/bankapp/investment-club/pkg/logger"
)

const appName = "investment-club"

// App holds the wired services and the resources behind them.
type App struct {
	Store       *storage.Store
	Auth        *service.AuthService
	Investments *service.InvestmentService
	Summary     *service.SummaryService

	driver  string
	closers []func(context.Context) error
}

// New opens the configured backend, initialises the three collections and
// builds the services on top of them.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{driver: cfg.Store.Driver}
	if a.driver == "" {
		a.driver = config.DriverMemory
	}

	kv, err := a.openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	a.Store = storage.NewStore(kv, logger.Component(log, "storage"))
	if err := a.Store.EnsureInitialized(ctx); err != nil {
		_ = a.Close(ctx)
		return nil, fmt.Errorf("initialise storage: %w", err)
	}

	admin := domain.AdminCredentials{Email: cfg.Auth.AdminEmail, Password: cfg.Auth.AdminPassword}
	a.Auth = service.NewAuthService(a.Store, admin, cfg.Auth.SessionTTL, logger.Component(log, "auth"))
	a.Investments = service.NewInvestmentService(a.Store, logger.Component(log, "investments"))
	a.Summary = service.NewSummaryService(a.Auth, a.Investments)

	if !a.Durable() {
		log.Warn().Str("driver", a.driver).Msg("non-durable store: all data is lost when the process exits")
	}
	log.Info().Str("driver", a.driver).Msg("storage ready")
	return a, nil
}

// Durable reports whether the backend keeps its data after the process exits.
func (a *App) Durable() bool {
	return a.driver == config.DriverRedis || a.driver == config.DriverMongo
}

func (a *App) openBackend(ctx context.Context, cfg *config.Config) (ports.KeyValueStore, error) {
	switch cfg.Store.Driver {
	case config.DriverRedis:
		client, err := redisdb.Connect(ctx, redisdb.Config{
			URL:      cfg.Redis.URL,
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return client.Close() })
		return redisdb.NewKV(client, cfg.Redis.KeyPrefix), nil

	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  appName,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)
		return mongodb.NewKV(db, cfg.Mongo.Collection), nil

	case config.DriverMemory, "":
		return storage.NewMemoryKV(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Store.Driver)
}

// Readiness names the backend probed by the readiness endpoint.
func (a *App) Readiness() map[string]ports.Pinger {
	return map[string]ports.Pinger{"store_" + a.driver: a.Store}
}

// Close releases backend connections.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
