package repositories

import (
	"context"

	"fre-insights/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	ExistsByFingerprint(ctx context.Context, userID uuid.UUID, fingerprint string) (bool, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error)
	UpdateCategory(ctx context.Context, userID, id uuid.UUID, categoryID *uuid.UUID) error

	// FindTransactions returns every matching transaction in the half-open range, oldest first
	FindTransactions(ctx context.Context, userID uuid.UUID, dateRange models.DateRange, filters models.TransactionFilters) ([]models.Transaction, error)
	List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetCategorySummary(ctx context.Context, userID uuid.UUID, dateRange models.DateRange, direction string) ([]models.CategorySummary, error)
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Category, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	FindOrCreate(ctx context.Context, userID uuid.UUID, name string) (*models.Category, error)
}

// ImportBatchRepositoryInterface defines the contract for import history operations
type ImportBatchRepositoryInterface interface {
	Create(ctx context.Context, batch *models.ImportBatch) error
	GetByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.ImportBatch, int64, error)
}
