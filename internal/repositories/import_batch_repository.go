package repositories

import (
	"context"
	"errors"
	"fmt"

	"fre-insights/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportBatchRepository handles database operations for import history
type ImportBatchRepository struct {
	db *gorm.DB
}

// NewImportBatchRepository creates a new import batch repository
func NewImportBatchRepository(db *gorm.DB) ImportBatchRepositoryInterface {
	return &ImportBatchRepository{
		db: db,
	}
}

// Create records a finished import
func (r *ImportBatchRepository) Create(ctx context.Context, batch *models.ImportBatch) error {
	if batch == nil {
		return errors.New("import batch cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(batch).Error; err != nil {
		return fmt.Errorf("failed to create import batch: %w", err)
	}

	return nil
}

// GetByUserID retrieves a user's imports, newest first
func (r *ImportBatchRepository) GetByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.ImportBatch, int64, error) {
	var batches []*models.ImportBatch
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ImportBatch{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count import batches: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&batches).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get import batches for user: %w", err)
	}

	return batches, total, nil
}
