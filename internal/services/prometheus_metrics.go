package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricImportRows        = "import.rows"
	MetricImportsTotal      = "import.completed"
	MetricImportDuration    = "import.duration"
	MetricDetectorFindings  = "detector.findings"
	MetricDetectorDuration  = "detector.duration"
	MetricInsightsCache     = "insights.cache"
	MetricCategoryAssigned  = "category.assigned"
	MetricLastImportedCount = "import.last_imported"
)

type PrometheusMetrics struct {
	importRows         *prometheus.CounterVec
	importsTotal       *prometheus.CounterVec
	importDuration     prometheus.Histogram
	lastImportedRows   prometheus.Gauge
	detectorFindings   *prometheus.CounterVec
	detectorDuration   *prometheus.HistogramVec
	insightsCache      *prometheus.CounterVec
	categoriesAssigned *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors with the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWithRegistry registers the collectors with reg
func NewPrometheusMetricsWithRegistry(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		importRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "import_rows_total",
				Help: "Total number of CSV rows processed by outcome",
			},
			[]string{"outcome"},
		),
		importsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "imports_total",
				Help: "Total number of imports by status",
			},
			[]string{"status"},
		),
		importDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "import_duration_milliseconds",
				Help:    "Import duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		lastImportedRows: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "import_last_imported_rows",
				Help: "Rows imported by the most recent import",
			},
		),
		detectorFindings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "detector_findings_total",
				Help: "Total number of findings reported per detector",
			},
			[]string{"detector"},
		),
		detectorDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "detector_duration_milliseconds",
				Help:    "Detector run duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"detector"},
		),
		insightsCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insights_cache_total",
				Help: "Insights cache lookups by result",
			},
			[]string{"result"},
		),
		categoriesAssigned: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_assignments_total",
				Help: "Categories assigned to transactions by source",
			},
			[]string{"source"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricImportsTotal:
		if status := tags["status"]; status != "" {
			m.importsTotal.WithLabelValues(status).Inc()
		}
	case MetricInsightsCache:
		if result := tags["result"]; result != "" {
			m.insightsCache.WithLabelValues(result).Inc()
		}
	case MetricCategoryAssigned:
		if source := tags["source"]; source != "" {
			m.categoriesAssigned.WithLabelValues(source).Inc()
		}
	}
}

// RecordProcessingTime expects detector durations as "detector.duration.<name>"
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == MetricImportDuration {
		m.importDuration.Observe(float64(duration.Milliseconds()))
		return
	}
	if detector, ok := strings.CutPrefix(name, MetricDetectorDuration+"."); ok && detector != "" {
		m.detectorDuration.WithLabelValues(detector).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricImportRows:
		if outcome := tags["outcome"]; outcome != "" && value > 0 {
			m.importRows.WithLabelValues(outcome).Add(value)
		}
	case MetricDetectorFindings:
		if detector := tags["detector"]; detector != "" && value > 0 {
			m.detectorFindings.WithLabelValues(detector).Add(value)
		}
	case MetricLastImportedCount:
		m.lastImportedRows.Set(value)
	}
}

// NoopMetrics discards everything; used by the CLI where no scrape endpoint exists
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string) {}

func (NoopMetrics) RecordProcessingTime(string, time.Duration) {}

func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
