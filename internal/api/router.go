package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/calora/calorie-tracker/docs"
	"github.com/calora/calorie-tracker/internal/api/handler"
	"github.com/calora/calorie-tracker/internal/api/middleware"
	"github.com/calora/calorie-tracker/internal/core/ports"
	"github.com/calora/calorie-tracker/internal/infrastructure/http/handlers"
)

// Deps are the services the HTTP layer is built on.
type Deps struct {
	Entries   ports.EntryService
	Users     ports.UserService
	Auth      ports.AuthService
	Readiness []handlers.Dependency
	JWTSecret string
	Log       zerolog.Logger

	// Registry receives the HTTP request metrics and serves /metrics.
	// Nil means the Prometheus default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(requestMetrics(d.Registry))

	// --- Handlers ---
	entryHandler := handler.NewEntryHandler(d.Entries)
	userHandler := handler.NewUserHandler(d.Users)
	authHandler := handler.NewAuthHandler(d.Auth)
	calcHandler := handler.NewCalculatorHandler()
	auth := middleware.Auth(d.JWTSecret)

	// --- Food entries ---
	e.POST("/food-entries", entryHandler.Create, auth)
	e.GET("/food-entries", entryHandler.List, auth)
	e.POST("/food-entries/analyze", entryHandler.Analyze, auth)
	e.DELETE("/food-entries/:id", entryHandler.Delete, auth)

	// --- Users ---
	e.POST("/users", userHandler.Register)
	e.GET("/users", userHandler.List, auth, middleware.RequireAdmin())
	e.GET("/users/:id", userHandler.Get, auth)
	e.PUT("/users/:id", userHandler.Update, auth)
	e.DELETE("/users/:id", userHandler.Deactivate, auth)
	e.GET("/users/:id/balance", userHandler.Balance, auth)
	e.GET("/users/:id/trend", userHandler.Trend, auth)

	// --- Auth & calculator (public) ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/calculate-maintenance", calcHandler.Maintenance)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Readiness...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", metricsHandler(d.Registry))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
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
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func requestMetrics(reg *prometheus.Registry) echo.MiddlewareFunc {
	cfg := echoprometheus.MiddlewareConfig{
		Subsystem: "calora",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}
	if reg != nil {
		cfg.Registerer = reg
	}
	return echoprometheus.NewMiddlewareWithConfig(cfg)
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}
