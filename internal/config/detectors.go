package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PeriodBand maps a median inter-charge interval (days, inclusive) to a frequency label
type PeriodBand struct {
	Frequency string  `yaml:"frequency"`
	MinDays   float64 `yaml:"min_days"`
	MaxDays   float64 `yaml:"max_days"`
}

// SubscriptionConfig holds the recurring-charge classifier thresholds
type SubscriptionConfig struct {
	MinOccurrences  int          `yaml:"min_occurrences"`
	AmountTolerance float64      `yaml:"amount_tolerance"`
	MaxAmountCV     float64      `yaml:"max_amount_cv"`
	Periods         []PeriodBand `yaml:"periods"`
}

// AnomalyConfig holds the baseline deviation thresholds
type AnomalyConfig struct {
	BaselineMonths int     `yaml:"baseline_months"`
	MinSamples     int     `yaml:"min_samples"`
	SigmaMultiple  float64 `yaml:"sigma_multiple"`
	MeanMultiple   float64 `yaml:"mean_multiple"`
}

// LeakConfig holds the month-over-month ranking settings
type LeakConfig struct {
	TopN               int     `yaml:"top_n"`
	MinIncreasePercent float64 `yaml:"min_increase_percent"`
}

// DetectorsConfig groups all detector thresholds
type DetectorsConfig struct {
	Subscription SubscriptionConfig `yaml:"subscription"`
	Anomaly      AnomalyConfig      `yaml:"anomaly"`
	Leak         LeakConfig         `yaml:"leak"`
}

// DefaultDetectorsConfig returns the stock thresholds
func DefaultDetectorsConfig() DetectorsConfig {
	return DetectorsConfig{
		Subscription: SubscriptionConfig{
			MinOccurrences:  3,
			AmountTolerance: 0.10,
			MaxAmountCV:     0.10,
			Periods:         DefaultPeriodBands(),
		},
		Anomaly: AnomalyConfig{
			BaselineMonths: 6,
			MinSamples:     3,
			SigmaMultiple:  2.0,
			MeanMultiple:   2.0,
		},
		Leak: LeakConfig{
			TopN:               5,
			MinIncreasePercent: 0,
		},
	}
}

// DefaultPeriodBands returns the recognized recurrence periods
func DefaultPeriodBands() []PeriodBand {
	return []PeriodBand{
		{Frequency: "weekly", MinDays: 6, MaxDays: 8},
		{Frequency: "biweekly", MinDays: 13, MaxDays: 16},
		{Frequency: "monthly", MinDays: 27, MaxDays: 32},
		{Frequency: "quarterly", MinDays: 85, MaxDays: 95},
		{Frequency: "annual", MinDays: 355, MaxDays: 375},
	}
}

func loadDetectorsFromEnv() DetectorsConfig {
	d := DefaultDetectorsConfig()

	d.Subscription.MinOccurrences = getIntEnv("SUBSCRIPTION_MIN_OCCURRENCES", d.Subscription.MinOccurrences)
	d.Subscription.AmountTolerance = getFloatEnv("SUBSCRIPTION_AMOUNT_TOLERANCE", d.Subscription.AmountTolerance)
	d.Subscription.MaxAmountCV = getFloatEnv("SUBSCRIPTION_MAX_AMOUNT_CV", d.Subscription.MaxAmountCV)

	d.Anomaly.BaselineMonths = getIntEnv("ANOMALY_BASELINE_MONTHS", d.Anomaly.BaselineMonths)
	d.Anomaly.MinSamples = getIntEnv("ANOMALY_MIN_SAMPLES", d.Anomaly.MinSamples)
	d.Anomaly.SigmaMultiple = getFloatEnv("ANOMALY_SIGMA_MULTIPLE", d.Anomaly.SigmaMultiple)
	d.Anomaly.MeanMultiple = getFloatEnv("ANOMALY_MEAN_MULTIPLE", d.Anomaly.MeanMultiple)

	d.Leak.TopN = getIntEnv("LEAK_TOP_N", d.Leak.TopN)
	d.Leak.MinIncreasePercent = getFloatEnv("LEAK_MIN_INCREASE_PERCENT", d.Leak.MinIncreasePercent)

	return d
}

// LoadFile overlays thresholds from a YAML file. Keys absent from the file keep their current values.
func (d *DetectorsConfig) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading detector config: %w", err)
	}
	if err := yaml.Unmarshal(data, d); err != nil {
		return fmt.Errorf("parsing detector config: %w", err)
	}
	return nil
}

// Save writes the thresholds as YAML
func (d DetectorsConfig) Save(path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshaling detector config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing detector config: %w", err)
	}
	return nil
}

// Validate checks threshold sanity
func (d DetectorsConfig) Validate() error {
	s := d.Subscription
	if s.MinOccurrences < 2 {
		return errors.New("subscription min_occurrences must be at least 2")
	}
	if s.AmountTolerance < 0 || s.MaxAmountCV < 0 {
		return errors.New("subscription tolerances must not be negative")
	}
	if len(s.Periods) == 0 {
		return errors.New("at least one subscription period is required")
	}
	for _, p := range s.Periods {
		if p.Frequency == "" || p.MinDays <= 0 || p.MaxDays < p.MinDays {
			return fmt.Errorf("invalid subscription period %+v", p)
		}
	}

	a := d.Anomaly
	if a.BaselineMonths < 1 {
		return errors.New("anomaly baseline_months must be at least 1")
	}
	if a.MinSamples < 2 {
		return errors.New("anomaly min_samples must be at least 2")
	}
	if a.SigmaMultiple <= 0 || a.MeanMultiple <= 1 {
		return errors.New("anomaly multiples must be positive and mean_multiple above 1")
	}

	if d.Leak.TopN < 1 {
		return errors.New("leak top_n must be at least 1")
	}
	if d.Leak.MinIncreasePercent < 0 {
		return errors.New("leak min_increase_percent must not be negative")
	}
	return nil
}
