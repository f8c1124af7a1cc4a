package services

import (
	"context"
	"errors"
	"fmt"

	"fre-insights/internal/models"
	"fre-insights/internal/repositories"

	"github.com/google/uuid"
)

const (
	defaultTransactionLimit = 50
	maxTransactionLimit     = 500
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	insights        InsightsServiceInterface
	metrics         MetricsRecorderInterface
	logger          ImportLoggerInterface
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	insights InsightsServiceInterface,
	metrics MetricsRecorderInterface,
	logger ImportLoggerInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		insights:        insights,
		metrics:         metrics,
		logger:          logger,
	}
}

func (s *transactionService) ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	if filters.UserID == uuid.Nil {
		return nil, 0, models.ErrMissingUserID
	}
	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return nil, 0, models.ErrInvalidDateRange
	}
	if filters.Direction != "" && !models.IsValidDirection(filters.Direction) {
		return nil, 0, models.ErrInvalidDirection
	}
	filters.Offset, filters.Limit = TransactionPage(filters.Offset, filters.Limit)

	return s.transactionRepo.List(ctx, filters)
}

// TransactionPage clamps a transaction listing page to the served bounds
func TransactionPage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	if limit > maxTransactionLimit {
		limit = maxTransactionLimit
	}
	return offset, limit
}

func (s *transactionService) GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, userID, transactionID)
}

// UpdateCategory assigns one of the user's categories, or clears it when categoryID is nil
func (s *transactionService) UpdateCategory(ctx context.Context, userID, transactionID uuid.UUID, categoryID *uuid.UUID) (*models.Transaction, error) {
	categoryName := ""
	if categoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, userID, *categoryID)
		if err != nil {
			return nil, err
		}
		categoryName = category.Name
	}

	if err := s.transactionRepo.UpdateCategory(ctx, userID, transactionID, categoryID); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	if s.insights != nil {
		s.insights.InvalidateUser(userID)
	}
	s.metrics.IncrementCounter(MetricCategoryAssigned, map[string]string{"source": "manual"})
	s.logger.LogCategoryAssigned(ctx, userID, transactionID, categoryName)

	return s.transactionRepo.GetByID(ctx, userID, transactionID)
}
