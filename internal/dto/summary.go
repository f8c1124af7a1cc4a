package dto

import "fre-insights/internal/models"

type CategoryTotalResponse struct {
	Category         string `json:"category"`
	Currency         string `json:"currency"`
	TransactionCount int64  `json:"transactionCount"`
	TotalAmount      string `json:"totalAmount"`
	AverageAmount    string `json:"averageAmount"`
}

type TrendPointResponse struct {
	Label   string `json:"label"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// SummaryResponse is the dashboard view of one month
type SummaryResponse struct {
	Month            int                     `json:"month"`
	Year             int                     `json:"year"`
	Income           string                  `json:"income"`
	Expense          string                  `json:"expense"`
	Net              string                  `json:"net"`
	SavingsRate      float64                 `json:"savingsRate"`
	TransactionCount int                     `json:"transactionCount"`
	TopCategories    []CategoryTotalResponse `json:"topCategories"`
	Trend            []TrendPointResponse    `json:"trend"`
}

func NewSummaryResponse(s *models.MonthlySummary) SummaryResponse {
	resp := SummaryResponse{
		Month:            s.Month,
		Year:             s.Year,
		Income:           s.Income.StringFixed(2),
		Expense:          s.Expense.StringFixed(2),
		Net:              s.Net.StringFixed(2),
		SavingsRate:      s.SavingsRate,
		TransactionCount: s.TransactionCount,
		TopCategories:    make([]CategoryTotalResponse, 0, len(s.TopCategories)),
		Trend:            make([]TrendPointResponse, 0, len(s.Trend)),
	}
	for _, c := range s.TopCategories {
		resp.TopCategories = append(resp.TopCategories, CategoryTotalResponse{
			Category:         c.Category,
			Currency:         c.Currency,
			TransactionCount: c.TransactionCount,
			TotalAmount:      c.TotalAmount.StringFixed(2),
			AverageAmount:    c.AverageAmount.StringFixed(2),
		})
	}
	for _, t := range s.Trend {
		resp.Trend = append(resp.Trend, TrendPointResponse{
			Label:   t.Label,
			Income:  t.Income.StringFixed(2),
			Expense: t.Expense.StringFixed(2),
		})
	}
	return resp
}
