package server

import (
	"fmt"
	"log/slog"

	"fre-insights/internal/config"
	"fre-insights/internal/repositories"
	"fre-insights/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Container holds the services shared by the HTTP server and the CLI commands
type Container struct {
	Transactions  repositories.TransactionRepositoryInterface
	Categories    repositories.CategoryRepositoryInterface
	ImportBatches repositories.ImportBatchRepositoryInterface

	Metrics       services.MetricsRecorderInterface
	Logger        services.ImportLoggerInterface
	Categorizer   services.CategoryServiceInterface
	Subscriptions services.SubscriptionDetectorInterface
	Anomalies     services.AnomalyDetectorInterface
	Leaks         services.LeakFinderInterface
	Insights      services.InsightsServiceInterface
	Importer      services.ImportServiceInterface
	Summary       services.SummaryServiceInterface
	Ledger        services.TransactionServiceInterface
}

// NewContainer wires repositories and services over db. Metrics are registered with reg.
func NewContainer(cfg *config.Config, db *gorm.DB, reg prometheus.Registerer, logger *slog.Logger) (*Container, error) {
	c := &Container{
		Transactions:  repositories.NewTransactionRepository(db),
		Categories:    repositories.NewCategoryRepository(db),
		ImportBatches: repositories.NewImportBatchRepository(db),
		Metrics:       services.NewPrometheusMetricsWithRegistry(reg),
		Logger:        services.NewImportLogger(logger),
	}

	var cache *services.InsightsCache
	if cfg.Insights.CacheTTL > 0 {
		var err error
		if cache, err = services.NewInsightsCache(cfg.Insights); err != nil {
			return nil, fmt.Errorf("failed to build container: %w", err)
		}
	}

	c.Categorizer = services.NewCategoryService(c.Categories)
	c.Subscriptions = services.NewSubscriptionDetector(c.Transactions, cfg.Detectors.Subscription, c.Metrics, c.Logger)
	c.Anomalies = services.NewAnomalyDetector(c.Transactions, cfg.Detectors.Anomaly, c.Metrics, c.Logger)
	c.Leaks = services.NewLeakFinder(c.Transactions, cfg.Detectors.Leak, c.Metrics, c.Logger)
	c.Insights = services.NewInsightsService(c.Subscriptions, c.Anomalies, c.Leaks, cache, c.Metrics)
	c.Importer = services.NewImportService(c.Transactions, c.ImportBatches, c.Categorizer, c.Insights, c.Metrics, c.Logger, cfg.Import)
	c.Summary = services.NewSummaryService(c.Transactions)
	c.Ledger = services.NewTransactionService(c.Transactions, c.Categories, c.Insights, c.Metrics, c.Logger)

	return c, nil
}
