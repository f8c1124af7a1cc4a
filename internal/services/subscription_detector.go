package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"fre-insights/internal/config"
	"fre-insights/internal/models"
	"fre-insights/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type subscriptionDetector struct {
	transactionRepo repositories.TransactionRepositoryInterface
	cfg             config.SubscriptionConfig
	metrics         MetricsRecorderInterface
	logger          ImportLoggerInterface
}

func NewSubscriptionDetector(
	transactionRepo repositories.TransactionRepositoryInterface,
	cfg config.SubscriptionConfig,
	metrics MetricsRecorderInterface,
	logger ImportLoggerInterface,
) SubscriptionDetectorInterface {
	return &subscriptionDetector{
		transactionRepo: transactionRepo,
		cfg:             cfg,
		metrics:         metrics,
		logger:          logger,
	}
}

type merchantKey struct {
	merchant string
	currency string
}

// DetectSubscriptions classifies merchants with regular, near-constant expense charges.
// The window starts lookbackMonths before the first day of now's month and ends with now's date.
func (d *subscriptionDetector) DetectSubscriptions(ctx context.Context, userID uuid.UUID, lookbackMonths int, now time.Time) ([]models.SubscriptionFinding, error) {
	lookback, err := resolveLookback(lookbackMonths)
	if err != nil {
		return nil, err
	}

	run := startDetectorRun(DetectorSubscriptions, userID, d.metrics, d.logger)

	window := models.DateRange{
		Start: models.MonthsBefore(int(now.Month()), now.Year(), lookback),
		End:   models.DateOnly(now).AddDate(0, 0, 1),
	}
	txs, err := d.transactionRepo.FindTransactions(ctx, userID, window, models.TransactionFilters{
		Direction: models.DirectionExpense,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for subscription detection: %w", err)
	}

	groups := make(map[merchantKey][]models.Transaction)
	for _, tx := range txs {
		merchant := tx.Merchant
		if merchant == "" {
			merchant = models.NormalizeMerchant(tx.Description)
		}
		key := merchantKey{merchant: merchant, currency: tx.Currency}
		groups[key] = append(groups[key], tx)
	}

	findings := make([]models.SubscriptionFinding, 0)
	for key, group := range groups {
		if finding, ok := d.classify(key, group); ok {
			findings = append(findings, finding)
		}
	}

	sort.Slice(findings, func(i, j int) bool {
		if !findings[i].Amount.Equal(findings[j].Amount) {
			return findings[i].Amount.GreaterThan(findings[j].Amount)
		}
		return findings[i].Merchant < findings[j].Merchant
	})

	run.finish(ctx, len(findings))
	return findings, nil
}

// classify is a binary decision; a group that misses any threshold is excluded
func (d *subscriptionDetector) classify(key merchantKey, group []models.Transaction) (models.SubscriptionFinding, bool) {
	if len(group) < d.cfg.MinOccurrences {
		return models.SubscriptionFinding{}, false
	}

	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Date.Before(group[j].Date)
	})

	intervals := make([]float64, 0, len(group)-1)
	for i := 1; i < len(group); i++ {
		intervals = append(intervals, group[i].Date.Sub(group[i-1].Date).Hours()/24)
	}
	interval := median(intervals)

	frequency, ok := d.frequencyFor(interval)
	if !ok {
		return models.SubscriptionFinding{}, false
	}

	amounts := make([]decimal.Decimal, len(group))
	for i, tx := range group {
		amounts[i] = tx.Amount
	}
	if !d.amountsStable(amounts) {
		return models.SubscriptionFinding{}, false
	}

	last := group[len(group)-1].Date
	return models.SubscriptionFinding{
		Merchant:         key.merchant,
		Amount:           medianDecimal(amounts),
		Currency:         key.currency,
		Frequency:        frequency,
		Count:            len(group),
		IntervalDays:     roundTo(interval, 1),
		LastDate:         last,
		NextExpectedDate: last.AddDate(0, 0, int(math.Round(interval))),
	}, true
}

func (d *subscriptionDetector) frequencyFor(intervalDays float64) (string, bool) {
	for _, band := range d.cfg.Periods {
		if intervalDays >= band.MinDays && intervalDays <= band.MaxDays {
			return band.Frequency, true
		}
	}
	return "", false
}

// amountsStable requires every amount near the median and a low overall spread
func (d *subscriptionDetector) amountsStable(amounts []decimal.Decimal) bool {
	values := toFloats(amounts)
	med := median(values)
	if med <= 0 {
		return false
	}

	for _, v := range values {
		if math.Abs(v-med)/med > d.cfg.AmountTolerance {
			return false
		}
	}
	return coefficientOfVariation(values) <= d.cfg.MaxAmountCV
}
