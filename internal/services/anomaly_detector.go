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

type anomalyDetector struct {
	transactionRepo repositories.TransactionRepositoryInterface
	cfg             config.AnomalyConfig
	metrics         MetricsRecorderInterface
	logger          ImportLoggerInterface
}

func NewAnomalyDetector(
	transactionRepo repositories.TransactionRepositoryInterface,
	cfg config.AnomalyConfig,
	metrics MetricsRecorderInterface,
	logger ImportLoggerInterface,
) AnomalyDetectorInterface {
	return &anomalyDetector{
		transactionRepo: transactionRepo,
		cfg:             cfg,
		metrics:         metrics,
		logger:          logger,
	}
}

type groupKey struct {
	kind     string
	name     string
	currency string
}

type baseline struct {
	mean   float64
	stdDev float64
	count  int
}

// DetectAnomalies flags target-month expenses that sit well above their category or merchant
// baseline, computed over the configured number of months strictly before the target month.
func (d *anomalyDetector) DetectAnomalies(ctx context.Context, userID uuid.UUID, month, year int) ([]models.AnomalyFinding, error) {
	target, err := models.MonthRange(month, year)
	if err != nil {
		return nil, err
	}

	run := startDetectorRun(DetectorAnomalies, userID, d.metrics, d.logger)

	window := models.DateRange{
		Start: models.MonthsBefore(month, year, d.cfg.BaselineMonths),
		End:   target.End,
	}
	txs, err := d.transactionRepo.FindTransactions(ctx, userID, window, models.TransactionFilters{
		Direction: models.DirectionExpense,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for anomaly detection: %w", err)
	}

	history := make(map[groupKey][]float64)
	var current []models.Transaction
	for _, tx := range txs {
		if target.Contains(tx.Date) {
			current = append(current, tx)
			continue
		}
		amount, _ := tx.Amount.Float64()
		for _, key := range groupKeys(tx) {
			history[key] = append(history[key], amount)
		}
	}

	baselines := make(map[groupKey]baseline, len(history))
	for key, values := range history {
		b, err := d.buildBaseline(values)
		if err != nil {
			continue
		}
		baselines[key] = b
	}

	findings := make([]models.AnomalyFinding, 0)
	for _, tx := range current {
		if finding, ok := d.evaluate(tx, baselines); ok {
			findings = append(findings, finding)
		}
	}

	sort.Slice(findings, func(i, j int) bool {
		if findings[i].DeviationPercent != findings[j].DeviationPercent {
			return findings[i].DeviationPercent > findings[j].DeviationPercent
		}
		if !findings[i].Date.Equal(findings[j].Date) {
			return findings[i].Date.Before(findings[j].Date)
		}
		return findings[i].TransactionID.String() < findings[j].TransactionID.String()
	})

	run.finish(ctx, len(findings))
	return findings, nil
}

// groupKeys lists the baselines a transaction belongs to, category first
func groupKeys(tx models.Transaction) []groupKey {
	keys := make([]groupKey, 0, 2)
	if name := tx.CategoryName(); name != "" {
		keys = append(keys, groupKey{kind: models.GroupKindCategory, name: name, currency: tx.Currency})
	}
	merchant := tx.Merchant
	if merchant == "" {
		merchant = models.NormalizeMerchant(tx.Description)
	}
	if merchant != "" {
		keys = append(keys, groupKey{kind: models.GroupKindMerchant, name: merchant, currency: tx.Currency})
	}
	return keys
}

func (d *anomalyDetector) buildBaseline(values []float64) (baseline, error) {
	if len(values) < d.cfg.MinSamples {
		return baseline{}, ErrInsufficientData
	}
	mu := mean(values)
	return baseline{
		mean:   mu,
		stdDev: populationStdDev(values, mu),
		count:  len(values),
	}, nil
}

// exceeds reports whether amount is anomalous against b. Only increases count.
func (d *anomalyDetector) exceeds(amount float64, b baseline) bool {
	if b.mean <= 0 || amount <= b.mean {
		return false
	}
	if b.stdDev > 0 && amount-b.mean > d.cfg.SigmaMultiple*b.stdDev {
		return true
	}
	return amount > d.cfg.MeanMultiple*b.mean
}

// evaluate checks every baseline of tx and keeps the largest deviation; ties go to the category
func (d *anomalyDetector) evaluate(tx models.Transaction, baselines map[groupKey]baseline) (models.AnomalyFinding, bool) {
	amount, _ := tx.Amount.Float64()

	var best *models.AnomalyFinding
	for _, key := range groupKeys(tx) {
		b, ok := baselines[key]
		if !ok || !d.exceeds(amount, b) {
			continue
		}

		deviation := roundTo((amount-b.mean)/b.mean*100, 1)
		if best != nil && deviation <= best.DeviationPercent {
			continue
		}

		mean := decimal.NewFromFloat(b.mean).Round(2)
		best = &models.AnomalyFinding{
			TransactionID:    tx.ID,
			GroupKind:        key.kind,
			Group:            key.name,
			Merchant:         tx.Merchant,
			Date:             tx.Date,
			Amount:           tx.Amount,
			Currency:         tx.Currency,
			Baseline:         mean,
			StdDev:           decimal.NewFromFloat(b.stdDev).Round(2),
			DeviationPercent: deviation,
			Reason: fmt.Sprintf("%.0f%% above typical for %s (baseline %s %s)",
				deviation, key.name, mean.StringFixed(2), tx.Currency),
		}
	}

	if best == nil {
		return models.AnomalyFinding{}, false
	}
	return *best, true
}
