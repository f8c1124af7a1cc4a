package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fre-insights/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type insightsService struct {
	subscriptions SubscriptionDetectorInterface
	anomalies     AnomalyDetectorInterface
	leaks         LeakFinderInterface
	cache         *InsightsCache
	metrics       MetricsRecorderInterface
	now           func() time.Time
}

// NewInsightsService bundles the detectors. cache may be nil to always recompute.
func NewInsightsService(
	subscriptions SubscriptionDetectorInterface,
	anomalies AnomalyDetectorInterface,
	leaks LeakFinderInterface,
	cache *InsightsCache,
	metrics MetricsRecorderInterface,
) InsightsServiceInterface {
	return &insightsService{
		subscriptions: subscriptions,
		anomalies:     anomalies,
		leaks:         leaks,
		cache:         cache,
		metrics:       metrics,
		now:           time.Now,
	}
}

// GetInsights runs the three detectors concurrently for one month.
// Subscriptions are evaluated as of the month's last day, or today for the running month.
func (s *insightsService) GetInsights(ctx context.Context, userID uuid.UUID, month, year, lookbackMonths int) (*models.InsightsReport, error) {
	period, err := models.MonthRange(month, year)
	if err != nil {
		return nil, err
	}
	lookback, err := resolveLookback(lookbackMonths)
	if err != nil {
		return nil, err
	}

	key := insightsKey(userID, month, year, lookback)
	if s.cache != nil {
		if report, ok := s.cache.Get(key); ok {
			s.metrics.IncrementCounter(MetricInsightsCache, map[string]string{"result": "hit"})
			return report, nil
		}
		s.metrics.IncrementCounter(MetricInsightsCache, map[string]string{"result": "miss"})
	}

	now := s.now().UTC()
	asOf := period.End.AddDate(0, 0, -1)
	if asOf.After(now) {
		asOf = now
	}

	report := &models.InsightsReport{
		UserID:         userID,
		Month:          month,
		Year:           year,
		LookbackMonths: lookback,
		GeneratedAt:    now,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		findings, err := s.subscriptions.DetectSubscriptions(gctx, userID, lookback, asOf)
		if err != nil {
			return fmt.Errorf("subscription detection failed: %w", err)
		}
		report.Subscriptions = findings
		return nil
	})
	g.Go(func() error {
		findings, err := s.anomalies.DetectAnomalies(gctx, userID, month, year)
		if err != nil {
			return fmt.Errorf("anomaly detection failed: %w", err)
		}
		report.Anomalies = findings
		return nil
	})
	g.Go(func() error {
		findings, err := s.leaks.FindTopLeaks(gctx, userID, month, year)
		if err != nil {
			return fmt.Errorf("leak detection failed: %w", err)
		}
		report.Leaks = findings
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("insights generation failed",
			"user_id", userID,
			"period", models.MonthLabel(month, year),
			"error", err,
		)
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(userID, key, report)
	}
	return report, nil
}

func (s *insightsService) InvalidateUser(userID uuid.UUID) {
	if s.cache != nil {
		s.cache.InvalidateUser(userID)
	}
}
