package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlySummary is the dashboard view of one calendar month
type MonthlySummary struct {
	UserID           uuid.UUID         `json:"user_id"`
	Month            int               `json:"month"`
	Year             int               `json:"year"`
	Income           decimal.Decimal   `json:"income"`
	Expense          decimal.Decimal   `json:"expense"`
	Net              decimal.Decimal   `json:"net"`
	SavingsRate      float64           `json:"savings_rate"`
	TransactionCount int               `json:"transaction_count"`
	TopCategories    []CategorySummary `json:"top_categories"`
	Trend            []MonthlyTotal    `json:"trend"`
}

// MonthlyTotal is one point of the expense trend
type MonthlyTotal struct {
	Label   string          `json:"label"`
	Month   int             `json:"month"`
	Year    int             `json:"year"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}
