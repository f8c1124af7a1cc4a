package services

import (
	"context"
	"fmt"
	"sort"

	"fre-insights/internal/config"
	"fre-insights/internal/models"
	"fre-insights/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type leakFinder struct {
	transactionRepo repositories.TransactionRepositoryInterface
	cfg             config.LeakConfig
	metrics         MetricsRecorderInterface
	logger          ImportLoggerInterface
}

func NewLeakFinder(
	transactionRepo repositories.TransactionRepositoryInterface,
	cfg config.LeakConfig,
	metrics MetricsRecorderInterface,
	logger ImportLoggerInterface,
) LeakFinderInterface {
	return &leakFinder{
		transactionRepo: transactionRepo,
		cfg:             cfg,
		metrics:         metrics,
		logger:          logger,
	}
}

// FindTopLeaks compares per-category expense totals with the previous calendar month.
// Percentage increases rank first; categories with no spend last month follow by absolute increase.
// Each currency of a category is compared on its own.
func (f *leakFinder) FindTopLeaks(ctx context.Context, userID uuid.UUID, month, year int) ([]models.LeakFinding, error) {
	current, err := models.MonthRange(month, year)
	if err != nil {
		return nil, err
	}
	prevMonth, prevYear := models.PreviousMonth(month, year)
	previous, err := models.MonthRange(prevMonth, prevYear)
	if err != nil {
		return nil, err
	}

	run := startDetectorRun(DetectorLeaks, userID, f.metrics, f.logger)

	currentTotals, err := f.categoryTotals(ctx, userID, current)
	if err != nil {
		return nil, err
	}
	previousTotals, err := f.categoryTotals(ctx, userID, previous)
	if err != nil {
		return nil, err
	}

	var ranked, newSpend []models.LeakFinding
	hundred := decimal.NewFromInt(100)
	for key, cur := range currentTotals {
		prev := previousTotals[key]
		if !cur.GreaterThan(prev) {
			continue
		}

		leak := models.LeakFinding{
			Category:      key.category,
			Currency:      key.currency,
			PreviousMonth: prev,
			CurrentMonth:  cur,
			Increase:      cur.Sub(prev),
		}
		if prev.IsZero() {
			newSpend = append(newSpend, leak)
			continue
		}

		pct, _ := leak.Increase.Div(prev).Mul(hundred).Round(2).Float64()
		if pct < f.cfg.MinIncreasePercent {
			continue
		}
		leak.IncreasePercent = &pct
		ranked = append(ranked, leak)
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if *a.IncreasePercent != *b.IncreasePercent {
			return *a.IncreasePercent > *b.IncreasePercent
		}
		if !a.Increase.Equal(b.Increase) {
			return a.Increase.GreaterThan(b.Increase)
		}
		return leakLess(a, b)
	})
	sort.Slice(newSpend, func(i, j int) bool {
		a, b := newSpend[i], newSpend[j]
		if !a.Increase.Equal(b.Increase) {
			return a.Increase.GreaterThan(b.Increase)
		}
		return leakLess(a, b)
	})

	leaks := make([]models.LeakFinding, 0, len(ranked)+len(newSpend))
	leaks = append(leaks, ranked...)
	leaks = append(leaks, newSpend...)
	if f.cfg.TopN > 0 && len(leaks) > f.cfg.TopN {
		leaks = leaks[:f.cfg.TopN]
	}

	run.finish(ctx, len(leaks))
	return leaks, nil
}

type leakKey struct {
	category string
	currency string
}

func leakLess(a, b models.LeakFinding) bool {
	if a.Category != b.Category {
		return a.Category < b.Category
	}
	return a.Currency < b.Currency
}

func (f *leakFinder) categoryTotals(ctx context.Context, userID uuid.UUID, period models.DateRange) (map[leakKey]decimal.Decimal, error) {
	summaries, err := f.transactionRepo.GetCategorySummary(ctx, userID, period, models.DirectionExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to load category totals for %s: %w", period, err)
	}

	totals := make(map[leakKey]decimal.Decimal, len(summaries))
	for _, s := range summaries {
		key := leakKey{category: s.Category, currency: s.Currency}
		totals[key] = totals[key].Add(s.TotalAmount)
	}
	return totals, nil
}
