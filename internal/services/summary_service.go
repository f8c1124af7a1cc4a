package services

import (
	"context"
	"fmt"

	"fre-insights/internal/models"
	"fre-insights/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	trendMonths      = 6
	topCategoryCount = 5
)

type summaryService struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

func NewSummaryService(transactionRepo repositories.TransactionRepositoryInterface) SummaryServiceInterface {
	return &summaryService{transactionRepo: transactionRepo}
}

// GetMonthlySummary totals a month and the expense trend of the months leading up to it
func (s *summaryService) GetMonthlySummary(ctx context.Context, userID uuid.UUID, month, year int) (*models.MonthlySummary, error) {
	period, err := models.MonthRange(month, year)
	if err != nil {
		return nil, err
	}

	window := models.DateRange{
		Start: models.MonthsBefore(month, year, trendMonths-1),
		End:   period.End,
	}
	txs, err := s.transactionRepo.FindTransactions(ctx, userID, window, models.TransactionFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for summary: %w", err)
	}

	trend := make([]models.MonthlyTotal, trendMonths)
	index := make(map[string]int, trendMonths)
	for i := range trend {
		start := window.Start.AddDate(0, i, 0)
		label := models.MonthLabel(int(start.Month()), start.Year())
		trend[i] = models.MonthlyTotal{
			Label:   label,
			Month:   int(start.Month()),
			Year:    start.Year(),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
		index[label] = i
	}

	summary := &models.MonthlySummary{
		UserID:  userID,
		Month:   month,
		Year:    year,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	for _, tx := range txs {
		i, ok := index[models.MonthLabel(int(tx.Date.Month()), tx.Date.Year())]
		if !ok {
			continue
		}
		if tx.IsIncome() {
			trend[i].Income = trend[i].Income.Add(tx.Amount)
		} else {
			trend[i].Expense = trend[i].Expense.Add(tx.Amount)
		}

		if period.Contains(tx.Date) {
			summary.TransactionCount++
		}
	}

	current := trend[len(trend)-1]
	summary.Income = current.Income
	summary.Expense = current.Expense
	summary.Net = current.Income.Sub(current.Expense)
	summary.SavingsRate = savingsRate(summary.Net, summary.Income)
	summary.Trend = trend

	categories, err := s.transactionRepo.GetCategorySummary(ctx, userID, period, models.DirectionExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to load category summary: %w", err)
	}
	if len(categories) > topCategoryCount {
		categories = categories[:topCategoryCount]
	}
	summary.TopCategories = categories

	return summary, nil
}

// savingsRate is net as a percentage of income, 0 without income
func savingsRate(net, income decimal.Decimal) float64 {
	if !income.IsPositive() {
		return 0
	}
	rate, _ := net.Div(income).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return rate
}
