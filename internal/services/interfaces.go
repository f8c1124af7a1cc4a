package services

import (
	"context"
	"io"
	"time"

	"fre-insights/internal/models"

	"github.com/google/uuid"
)

// ImportServiceInterface defines CSV import operations
type ImportServiceInterface interface {
	ImportTransactions(ctx context.Context, userID uuid.UUID, file []byte, req models.ImportRequest) (*models.ImportResult, error)
	Preview(file []byte, limit int) (*models.CSVPreview, error)
	GetImportHistory(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.ImportBatch, int64, error)
}

// SubscriptionDetectorInterface finds recurring charges
type SubscriptionDetectorInterface interface {
	DetectSubscriptions(ctx context.Context, userID uuid.UUID, lookbackMonths int, now time.Time) ([]models.SubscriptionFinding, error)
}

// AnomalyDetectorInterface finds transactions far above their baseline
type AnomalyDetectorInterface interface {
	DetectAnomalies(ctx context.Context, userID uuid.UUID, month, year int) ([]models.AnomalyFinding, error)
}

// LeakFinderInterface ranks categories by month-over-month growth
type LeakFinderInterface interface {
	FindTopLeaks(ctx context.Context, userID uuid.UUID, month, year int) ([]models.LeakFinding, error)
}

// InsightsServiceInterface bundles all detectors for one month
type InsightsServiceInterface interface {
	GetInsights(ctx context.Context, userID uuid.UUID, month, year, lookbackMonths int) (*models.InsightsReport, error)
	InvalidateUser(userID uuid.UUID)
}

type SummaryServiceInterface interface {
	GetMonthlySummary(ctx context.Context, userID uuid.UUID, month, year int) (*models.MonthlySummary, error)
}

// CategoryServiceInterface defines categorization and user category operations
type CategoryServiceInterface interface {
	// Categorize picks a default category for a description
	Categorize(description string) (category string, confidence float64)

	CategorizeByMerchant(merchantName string) (category string, confidence float64)
	CategorizeByDescription(description string) (category string, confidence float64)
	FuzzyMatchMerchant(input string) (merchant string, score float64)

	// CategorizeTransaction runs every strategy and reports which one matched
	CategorizeTransaction(transaction *models.Transaction) *models.CategorizationResult

	// ResolveCategory categorizes the transaction and returns the user's matching category, creating it when missing.
	// A nil category means nothing matched.
	ResolveCategory(ctx context.Context, userID uuid.UUID, transaction *models.Transaction) (*models.Category, error)

	ListCategories(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	CreateCategory(ctx context.Context, userID uuid.UUID, name string) (*models.Category, error)
}

type TransactionServiceInterface interface {
	ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error)
	UpdateCategory(ctx context.Context, userID, transactionID uuid.UUID, categoryID *uuid.UUID) (*models.Transaction, error)
}

// HistoryGeneratorInterface generates realistic transaction history for demos and tests
type HistoryGeneratorInterface interface {
	Generate(userID uuid.UUID, start, end time.Time, currency string) []*models.Transaction
	WriteCSV(w io.Writer, transactions []*models.Transaction) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type ImportLoggerInterface interface {
	LogImportStarted(ctx context.Context, userID uuid.UUID, fileName string, sizeBytes int)
	LogImportCompleted(ctx context.Context, userID uuid.UUID, result *models.ImportResult)
	LogImportRejected(ctx context.Context, userID uuid.UUID, reason string)
	LogRowRejected(ctx context.Context, userID uuid.UUID, rowErr models.RowError)
	LogDetectorCompleted(ctx context.Context, userID uuid.UUID, detector string, findings int, durationMs int64)
	LogCategoryAssigned(ctx context.Context, userID, transactionID uuid.UUID, category string)
}
