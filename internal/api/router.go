package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/bankapp/investment-club/docs"
	"github.com/bankapp/investment-club/internal/api/handler"
	"github.com/bankapp/investment-club/internal/api/middleware"
	"github.com/bankapp/investment-club/internal/core/domain"
	"github.com/bankapp/investment-club/internal/core/ports"
	"github.com/bankapp/investment-club/internal/infrastructure/http/handlers"
)

// Dependencies are the services and settings the router wires together.
type Dependencies struct {
	Auth        ports.AuthService
	Clients     ports.ClientDirectory
	Investments ports.InvestmentService
	Summary     ports.SummaryService

	// Readiness lists the backends probed by /health/ready, by name.
	Readiness map[string]ports.Pinger

	JWTSecret string
	Logger    zerolog.Logger

	// Registry receives the HTTP request metrics and backs /metrics.
	// Nil means the default Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(prometheusConfig(deps.Registry)))

	// --- Dependencies ---
	signToken := func(s domain.Session) (string, error) {
		return middleware.SignSession(deps.JWTSecret, s)
	}
	authHandler := handler.NewAuthHandler(deps.Auth, signToken)
	investmentHandler := handler.NewInvestmentHandler(deps.Investments, deps.Summary)
	clientHandler := handler.NewClientHandler(deps.Clients, deps.Summary)
	summaryHandler := handler.NewSummaryHandler(deps.Summary)

	authMiddleware := middleware.Auth(deps.JWTSecret, deps.Auth)
	adminOnly := middleware.RBAC(deps.Auth, domain.RoleAdmin)
	clientOnly := middleware.RBAC(deps.Auth, domain.RoleClient)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	v1 := e.Group("/v1", authMiddleware)

	// --- Client area ---
	me := v1.Group("/me", clientOnly)
	me.GET("/investments", investmentHandler.Mine)
	me.GET("/summary", summaryHandler.Mine)

	// --- Admin area ---
	v1.GET("/clients", clientHandler.List, adminOnly)
	v1.GET("/clients/:id", clientHandler.Get, adminOnly)
	v1.GET("/investments", investmentHandler.List, adminOnly)
	v1.POST("/investments", investmentHandler.Create, adminOnly)
	v1.PATCH("/investments/:id", investmentHandler.Update, adminOnly)
	v1.DELETE("/investments/:id", investmentHandler.Delete, adminOnly)
	v1.GET("/summary", summaryHandler.Admin, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer(deps.Registry)}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func prometheusConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	cfg := echoprometheus.MiddlewareConfig{
		Namespace: "investment_club",
		Subsystem: "http",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}
	if reg != nil {
		cfg.Registerer = reg
	}
	return cfg
}

func gatherer(reg *prometheus.Registry) prometheus.Gatherer {
	if reg != nil {
		return reg
	}
	return prometheus.DefaultGatherer
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
