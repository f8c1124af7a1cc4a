package server

import (
	"fmt"
	"net/http"

	"fre-insights/internal/config"
	"fre-insights/internal/handlers"
	"fre-insights/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// multipart framing on top of the file itself
const uploadOverheadBytes = 1 << 20

// NewRouter builds the echo instance with the middleware chain and every route registered.
// /health and /metrics sit outside the user-scoped /api/v1 group.
func NewRouter(cfg *config.Config, c *Container, db handlers.Pinger, gatherer prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	if len(cfg.Server.CORSAllowOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: cfg.Server.CORSAllowOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderContentType, middleware.UserIDHeader, middleware.TraceIDHeader},
		}))
	}
	e.Use(echomw.BodyLimit(bodyLimit(cfg.Import.MaxUploadBytes)))

	health := handlers.NewHealthCheckHandler(db)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1", middleware.UserContext(), middleware.RateLimiter(cfg.Security))
	registerRoutes(api, cfg, c)

	return e
}

func registerRoutes(api *echo.Group, cfg *config.Config, c *Container) {
	imports := handlers.NewImportHandler(c.Importer, cfg.Import)
	api.POST("/imports/preview", imports.Preview)
	api.POST("/imports", imports.Import)
	api.GET("/imports", imports.History)

	transactions := handlers.NewTransactionHandler(c.Ledger)
	api.GET("/transactions", transactions.ListTransactions)
	api.GET("/transactions/:id", transactions.GetTransaction)
	api.PATCH("/transactions/:id/category", transactions.UpdateCategory)

	categories := handlers.NewCategoryHandler(c.Categorizer)
	api.GET("/categories", categories.ListCategories)
	api.POST("/categories", categories.CreateCategory)

	insights := handlers.NewInsightsHandler(c.Subscriptions, c.Anomalies, c.Leaks, c.Insights)
	api.GET("/insights", insights.Bundle)
	api.GET("/insights/subscriptions", insights.Subscriptions)
	api.GET("/insights/anomalies", insights.Anomalies)
	api.GET("/insights/leaks", insights.Leaks)

	summary := handlers.NewSummaryHandler(c.Summary)
	api.GET("/summary", summary.GetSummary)

	if cfg.IsDevelopment() {
		dev := handlers.NewDevHandler(c.Importer)
		api.POST("/dev/generate-history", dev.GenerateHistory)
	}
}

// bodyLimit renders the request size cap in the unit format BodyLimit expects
func bodyLimit(maxUploadBytes int64) string {
	if maxUploadBytes <= 0 {
		return "32M"
	}
	return fmt.Sprintf("%dK", (maxUploadBytes+uploadOverheadBytes+1023)/1024)
}
