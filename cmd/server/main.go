package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bankapp/investment-club/internal/api"
	"github.com/bankapp/investment-club/internal/app"
	"github.com/bankapp/investment-club/internal/infrastructure/config"
	"github.com/bankapp/investment-club/pkg/logger"
)

// @title                       Investment Club API
// @version                     1.0
// @description                 Client registration, single-session login and investment tracking for the investment club.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the session token.
func main() {
	ctx := context.Background()
	cfg := config.MustLoad(ctx)

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "investment-club-api",
	})

	club, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open storage")
	}

	e := api.NewRouter(api.Dependencies{
		Auth:        club.Auth,
		Clients:     club.Auth,
		Investments: club.Investments,
		Summary:     club.Summary,
		Readiness:   club.Readiness(),
		JWTSecret:   cfg.JWTSecret,
		Logger:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("investment club API listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(ctxShutdown); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
	if err := club.Close(ctxShutdown); err != nil {
		log.Error().Err(err).Msg("closing storage")
	}
	log.Info().Msg("server stopped")
}
