package dto

import (
	"time"

	"fre-insights/internal/models"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used in query parameters and responses
const DateLayout = "2006-01-02"

// ListTransactionsQuery filters the transaction list. Start and end are inclusive dates.
type ListTransactionsQuery struct {
	Start     string `query:"start" validate:"omitempty,datetime=2006-01-02"`
	End       string `query:"end" validate:"omitempty,datetime=2006-01-02"`
	Direction string `query:"direction" validate:"direction"`
	Category  string `query:"category" validate:"omitempty,uuid"`
	Merchant  string `query:"merchant" validate:"max=255"`
	Currency  string `query:"currency" validate:"omitempty,currency"`
	PageQuery
}

// Filters converts the validated query into repository filters
func (q ListTransactionsQuery) Filters(userID uuid.UUID) models.TransactionFilters {
	filters := models.TransactionFilters{
		UserID:    userID,
		Direction: q.Direction,
		Merchant:  q.Merchant,
		Currency:  q.Currency,
		Offset:    q.Offset,
		Limit:     q.Limit,
	}
	if t, err := time.Parse(DateLayout, q.Start); err == nil {
		filters.StartDate = &t
	}
	if t, err := time.Parse(DateLayout, q.End); err == nil {
		filters.EndDate = &t
	}
	if id, err := uuid.Parse(q.Category); err == nil {
		filters.CategoryID = &id
	}
	return filters
}

// TransactionResponse is a stored transaction as returned by the API
type TransactionResponse struct {
	ID           uuid.UUID  `json:"id"`
	Date         string     `json:"date"`
	Description  string     `json:"description"`
	Merchant     string     `json:"merchant"`
	Amount       string     `json:"amount"`
	Direction    string     `json:"direction"`
	Currency     string     `json:"currency"`
	CategoryID   *uuid.UUID `json:"categoryId,omitempty"`
	CategoryName string     `json:"categoryName,omitempty"`
	SourceRef    string     `json:"sourceRef,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// NewTransactionResponse converts a transaction model
func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          t.ID,
		Date:        t.Date.Format(DateLayout),
		Description: t.Description,
		Merchant:    t.Merchant,
		Amount:      t.Amount.StringFixed(2),
		Direction:   t.Direction,
		Currency:    t.Currency,
		CategoryID:  t.CategoryID,
		SourceRef:   t.SourceRef,
		CreatedAt:   t.CreatedAt,
	}
	if t.Category != nil {
		resp.CategoryName = t.Category.Name
	}
	return resp
}

// ListTransactionsResponse is one page of transactions, newest first
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   OffsetPagination      `json:"pagination"`
}

// NewListTransactionsResponse converts a page of transactions
func NewListTransactionsResponse(transactions []models.Transaction, total int64, offset, limit int) ListTransactionsResponse {
	items := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, NewTransactionResponse(&transactions[i]))
	}
	return ListTransactionsResponse{
		Transactions: items,
		Pagination:   OffsetPagination{Offset: offset, Limit: limit, Total: total},
	}
}

// UpdateCategoryRequest assigns a category to a transaction; null clears it
type UpdateCategoryRequest struct {
	CategoryID *uuid.UUID `json:"categoryId"`
}
