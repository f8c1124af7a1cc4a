package models

import "github.com/shopspring/decimal"

// CategorySummary contains aggregated data for one category in one currency
type CategorySummary struct {
	Category         string          `json:"category"`
	Currency         string          `json:"currency"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	AverageAmount    decimal.Decimal `json:"average_amount"`
}
