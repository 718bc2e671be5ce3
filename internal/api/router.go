package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/hrive/portal-backend/internal/api/handler"
	"github.com/hrive/portal-backend/internal/core/ports"
	"github.com/hrive/portal-backend/internal/core/service"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The repository decides which backend is in play; nothing below this point
// knows or cares which one it is.
func NewRouter(repo ports.UserRepository, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hrive"))

	// --- Dependencies ---
	authService := service.NewAuthService(repo)
	authHandler := handler.NewAuthHandler(authService)
	portalService := service.NewPortalService()
	portalHandler := handler.NewPortalHandler(portalService)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/signup", authHandler.Signup)

	// --- Portal routes ---
	// The static "summary" segment wins over the :section param, so
	// /api/portal/<x>/summary always reaches Summary.
	e.GET("/api/portal/:role/summary", portalHandler.Summary)
	e.GET("/api/portal/:portalId/:section", portalHandler.Section)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(repo.Ping)

	e.GET("/api/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/api/health/ready", readinessHandler.Readiness) // readiness – is the store reachable?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
