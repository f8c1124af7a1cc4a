package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Detector names used in metrics and logs
const (
	DetectorSubscriptions = "subscriptions"
	DetectorAnomalies     = "anomalies"
	DetectorLeaks         = "leaks"
)

const (
	defaultLookbackMonths = 6
	maxLookbackMonths     = 36
)

var (
	ErrInsufficientData = errors.New("insufficient history for baseline")
	ErrInvalidLookback  = errors.New("lookback must be between 1 and 36 months")
)

// resolveLookback applies the default for zero and rejects out of range values
func resolveLookback(months int) (int, error) {
	if months == 0 {
		return defaultLookbackMonths, nil
	}
	if months < 0 || months > maxLookbackMonths {
		return 0, ErrInvalidLookback
	}
	return months, nil
}

// detectorRun reports duration and finding count of one detector pass
type detectorRun struct {
	name    string
	userID  uuid.UUID
	start   time.Time
	metrics MetricsRecorderInterface
	logger  ImportLoggerInterface
}

func startDetectorRun(name string, userID uuid.UUID, metrics MetricsRecorderInterface, logger ImportLoggerInterface) *detectorRun {
	return &detectorRun{
		name:    name,
		userID:  userID,
		start:   time.Now(),
		metrics: metrics,
		logger:  logger,
	}
}

func (r *detectorRun) finish(ctx context.Context, findings int) {
	elapsed := time.Since(r.start)
	if r.metrics != nil {
		r.metrics.RecordProcessingTime(MetricDetectorDuration+"."+r.name, elapsed)
		r.metrics.RecordGauge(MetricDetectorFindings, float64(findings), map[string]string{"detector": r.name})
	}
	if r.logger != nil {
		r.logger.LogDetectorCompleted(ctx, r.userID, r.name, findings, elapsed.Milliseconds())
	}
}

// medianDecimal returns the exact median of amounts without float rounding
func medianDecimal(amounts []decimal.Decimal) decimal.Decimal {
	if len(amounts) == 0 {
		return decimal.Zero
	}
	sorted := append([]decimal.Decimal(nil), amounts...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LessThan(sorted[j])
	})

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2)).Round(2)
	}
	return sorted[mid]
}
