package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fre-insights/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTransactionConflict = errors.New("transaction with the same fingerprint already exists")
)

const maxListLimit = 500

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create inserts a transaction; a (user_id, fingerprint) collision returns ErrTransactionConflict
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}

	if err := r.db.WithContext(ctx).Omit("Category").Create(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
			return ErrTransactionConflict
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// ExistsByFingerprint is an exact-key lookup on the unique (user_id, fingerprint) index
func (r *transactionRepository) ExistsByFingerprint(ctx context.Context, userID uuid.UUID, fingerprint string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("user_id = ? AND fingerprint = ?", userID, fingerprint).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check transaction fingerprint: %w", err)
	}
	return count > 0, nil
}

// GetByID retrieves a user's transaction by ID
func (r *transactionRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// UpdateCategory sets or clears the category of a user's transaction
func (r *transactionRepository) UpdateCategory(ctx context.Context, userID, id uuid.UUID, categoryID *uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"category_id": categoryID,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// FindTransactions retrieves transactions within a date range with optional filters
func (r *transactionRepository) FindTransactions(ctx context.Context, userID uuid.UUID, dateRange models.DateRange, filters models.TransactionFilters) ([]models.Transaction, error) {
	var transactions []models.Transaction

	query := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Preload("Category").
		Where("user_id = ? AND date >= ? AND date < ?", userID, dateRange.Start, dateRange.End)
	query = applyTransactionFilters(query, filters)

	if err := query.Order("date ASC, created_at ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", err)
	}
	return transactions, nil
}

// List retrieves a page of transactions, newest first
func (r *transactionRepository) List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ?", filters.UserID)
	if filters.StartDate != nil {
		query = query.Where("date >= ?", models.DateOnly(*filters.StartDate))
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", models.DateOnly(*filters.EndDate))
	}
	query = applyTransactionFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	if err := query.Preload("Category").
		Offset(filters.Offset).Limit(limit).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// GetCategorySummary retrieves totals grouped by category name and currency; uncategorized rows are
// reported as "Uncategorized". Currencies are never summed together.
func (r *transactionRepository) GetCategorySummary(ctx context.Context, userID uuid.UUID, dateRange models.DateRange, direction string) ([]models.CategorySummary, error) {
	var summaries []models.CategorySummary

	query := `
		SELECT
			COALESCE(c.name, ?) as category,
			t.currency as currency,
			COUNT(*) as transaction_count,
			SUM(t.amount) as total_amount,
			AVG(t.amount) as average_amount
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = ?
			AND t.date >= ? AND t.date < ?
			AND t.direction = ?
		GROUP BY 1, 2
		ORDER BY total_amount DESC, category, currency
	`

	if err := r.db.WithContext(ctx).Raw(query,
		models.CategoryUncategorized, userID, dateRange.Start, dateRange.End, direction).
		Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to get category summary: %w", err)
	}

	return summaries, nil
}

func applyTransactionFilters(query *gorm.DB, filters models.TransactionFilters) *gorm.DB {
	if filters.Direction != "" {
		query = query.Where("direction = ?", filters.Direction)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.Merchant != "" {
		query = query.Where("merchant LIKE ?", "%"+strings.ToUpper(filters.Merchant)+"%")
	}
	if filters.Currency != "" {
		query = query.Where("currency = ?", strings.ToUpper(filters.Currency))
	}
	return query
}

// isDuplicateKeyError checks driver messages when gorm does not translate the error
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// Postgres and SQLite duplicate key error detection
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
