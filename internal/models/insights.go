package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recurrence labels assigned by the subscription detector
const (
	FrequencyWeekly    = "weekly"
	FrequencyBiweekly  = "biweekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyAnnual    = "annual"
)

// Baseline groupings used by the anomaly detector
const (
	GroupKindCategory = "category"
	GroupKindMerchant = "merchant"
)

// SubscriptionFinding describes a merchant charging a near-constant amount on a regular period
type SubscriptionFinding struct {
	Merchant         string          `json:"merchant"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Frequency        string          `json:"frequency"`
	Count            int             `json:"count"`
	IntervalDays     float64         `json:"interval_days"`
	LastDate         time.Time       `json:"last_date"`
	NextExpectedDate time.Time       `json:"next_expected_date"`
}

// AnomalyFinding is a target-month transaction that deviates from its group's baseline
type AnomalyFinding struct {
	TransactionID    uuid.UUID       `json:"transaction_id"`
	GroupKind        string          `json:"group_kind"`
	Group            string          `json:"group"`
	Merchant         string          `json:"merchant"`
	Date             time.Time       `json:"date"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Baseline         decimal.Decimal `json:"baseline"`
	StdDev           decimal.Decimal `json:"std_dev"`
	DeviationPercent float64         `json:"deviation_percent"`
	Reason           string          `json:"reason"`
}

// LeakFinding is a category whose spending grew month over month.
// IncreasePercent is nil when the category had no spend in the previous month.
type LeakFinding struct {
	Category        string          `json:"category"`
	Currency        string          `json:"currency"`
	PreviousMonth   decimal.Decimal `json:"previous_month"`
	CurrentMonth    decimal.Decimal `json:"current_month"`
	Increase        decimal.Decimal `json:"increase"`
	IncreasePercent *float64        `json:"increase_percent"`
}

// IsNewSpend reports whether the category had no spend in the previous month
func (l *LeakFinding) IsNewSpend() bool {
	return l.IncreasePercent == nil
}

// InsightsReport bundles all detector output for one user and month
type InsightsReport struct {
	UserID         uuid.UUID             `json:"user_id"`
	Month          int                   `json:"month"`
	Year           int                   `json:"year"`
	LookbackMonths int                   `json:"lookback_months"`
	Subscriptions  []SubscriptionFinding `json:"subscriptions"`
	Anomalies      []AnomalyFinding      `json:"anomalies"`
	Leaks          []LeakFinding         `json:"leaks"`
	GeneratedAt    time.Time             `json:"generated_at"`
}

// MonthlyRecurringTotal sums subscription amounts normalized to a monthly figure
func (r *InsightsReport) MonthlyRecurringTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range r.Subscriptions {
		total = total.Add(MonthlyEquivalent(s.Amount, s.Frequency))
	}
	return total
}

// MonthlyEquivalent converts a periodic amount to its monthly cost
func MonthlyEquivalent(amount decimal.Decimal, frequency string) decimal.Decimal {
	switch frequency {
	case FrequencyWeekly:
		return amount.Mul(decimal.NewFromInt(52)).Div(decimal.NewFromInt(12)).Round(2)
	case FrequencyBiweekly:
		return amount.Mul(decimal.NewFromInt(26)).Div(decimal.NewFromInt(12)).Round(2)
	case FrequencyQuarterly:
		return amount.Div(decimal.NewFromInt(3)).Round(2)
	case FrequencyAnnual:
		return amount.Div(decimal.NewFromInt(12)).Round(2)
	default:
		return amount
	}
}
