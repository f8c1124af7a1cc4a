package dto

import (
	"time"

	"fre-insights/internal/models"

	"github.com/google/uuid"
)

// PeriodQuery selects a calendar month; both fields zero means the current month
type PeriodQuery struct {
	Month int `query:"month" validate:"min=0,max=12"`
	Year  int `query:"year" validate:"omitempty,min=1900,max=9999"`
}

// Resolve fills in the current month/year for omitted fields
func (q PeriodQuery) Resolve(now time.Time) (int, int) {
	month, year := q.Month, q.Year
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return month, year
}

// SubscriptionsQuery controls the subscription scan; asOf defaults to today
type SubscriptionsQuery struct {
	LookbackMonths int    `query:"lookbackMonths" validate:"min=0,max=36"`
	AsOf           string `query:"asOf" validate:"omitempty,datetime=2006-01-02"`
}

// AsOfTime returns the evaluation date, falling back to now
func (q SubscriptionsQuery) AsOfTime(now time.Time) time.Time {
	if t, err := time.Parse(DateLayout, q.AsOf); err == nil {
		return t
	}
	return now
}

type InsightsQuery struct {
	PeriodQuery
	LookbackMonths int `query:"lookbackMonths" validate:"min=0,max=36"`
}

type SubscriptionResponse struct {
	Merchant         string  `json:"merchant"`
	Amount           string  `json:"amount"`
	MonthlyAmount    string  `json:"monthlyAmount"`
	Currency         string  `json:"currency"`
	Frequency        string  `json:"frequency"`
	Count            int     `json:"count"`
	IntervalDays     float64 `json:"intervalDays"`
	LastDate         string  `json:"lastDate"`
	NextExpectedDate string  `json:"nextExpectedDate"`
}

type SubscriptionsResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

type AnomalyResponse struct {
	TransactionID    uuid.UUID `json:"transactionId"`
	GroupKind        string    `json:"groupKind"`
	Group            string    `json:"group"`
	Merchant         string    `json:"merchant"`
	Date             string    `json:"date"`
	Amount           string    `json:"amount"`
	Currency         string    `json:"currency"`
	Baseline         string    `json:"baseline"`
	StdDev           string    `json:"stdDev"`
	DeviationPercent float64   `json:"deviationPercent"`
	Reason           string    `json:"reason"`
}

type AnomaliesResponse struct {
	Month     int               `json:"month"`
	Year      int               `json:"year"`
	Anomalies []AnomalyResponse `json:"anomalies"`
}

// LeakResponse is a category whose spend grew. IncreasePercent is null for new spend.
type LeakResponse struct {
	Category        string   `json:"category"`
	Currency        string   `json:"currency"`
	PreviousMonth   string   `json:"previousMonth"`
	CurrentMonth    string   `json:"currentMonth"`
	Increase        string   `json:"increase"`
	IncreasePercent *float64 `json:"increasePercent"`
	NewSpend        bool     `json:"newSpend"`
}

type LeaksResponse struct {
	Month int            `json:"month"`
	Year  int            `json:"year"`
	Leaks []LeakResponse `json:"leaks"`
}

// InsightsResponse is the insights page bundle
type InsightsResponse struct {
	Month                 int                    `json:"month"`
	Year                  int                    `json:"year"`
	LookbackMonths        int                    `json:"lookbackMonths"`
	Subscriptions         []SubscriptionResponse `json:"subscriptions"`
	Anomalies             []AnomalyResponse      `json:"anomalies"`
	Leaks                 []LeakResponse         `json:"leaks"`
	MonthlyRecurringTotal string                 `json:"monthlyRecurringTotal"`
	GeneratedAt           time.Time              `json:"generatedAt"`
}

func NewSubscriptionResponses(findings []models.SubscriptionFinding) []SubscriptionResponse {
	items := make([]SubscriptionResponse, 0, len(findings))
	for _, f := range findings {
		items = append(items, SubscriptionResponse{
			Merchant:         f.Merchant,
			Amount:           f.Amount.StringFixed(2),
			MonthlyAmount:    models.MonthlyEquivalent(f.Amount, f.Frequency).StringFixed(2),
			Currency:         f.Currency,
			Frequency:        f.Frequency,
			Count:            f.Count,
			IntervalDays:     f.IntervalDays,
			LastDate:         f.LastDate.Format(DateLayout),
			NextExpectedDate: f.NextExpectedDate.Format(DateLayout),
		})
	}
	return items
}

func NewAnomalyResponses(findings []models.AnomalyFinding) []AnomalyResponse {
	items := make([]AnomalyResponse, 0, len(findings))
	for _, f := range findings {
		items = append(items, AnomalyResponse{
			TransactionID:    f.TransactionID,
			GroupKind:        f.GroupKind,
			Group:            f.Group,
			Merchant:         f.Merchant,
			Date:             f.Date.Format(DateLayout),
			Amount:           f.Amount.StringFixed(2),
			Currency:         f.Currency,
			Baseline:         f.Baseline.StringFixed(2),
			StdDev:           f.StdDev.StringFixed(2),
			DeviationPercent: f.DeviationPercent,
			Reason:           f.Reason,
		})
	}
	return items
}

func NewLeakResponses(findings []models.LeakFinding) []LeakResponse {
	items := make([]LeakResponse, 0, len(findings))
	for i := range findings {
		f := &findings[i]
		items = append(items, LeakResponse{
			Category:        f.Category,
			Currency:        f.Currency,
			PreviousMonth:   f.PreviousMonth.StringFixed(2),
			CurrentMonth:    f.CurrentMonth.StringFixed(2),
			Increase:        f.Increase.StringFixed(2),
			IncreasePercent: f.IncreasePercent,
			NewSpend:        f.IsNewSpend(),
		})
	}
	return items
}

// NewInsightsResponse converts a detector bundle
func NewInsightsResponse(report *models.InsightsReport) InsightsResponse {
	return InsightsResponse{
		Month:                 report.Month,
		Year:                  report.Year,
		LookbackMonths:        report.LookbackMonths,
		Subscriptions:         NewSubscriptionResponses(report.Subscriptions),
		Anomalies:             NewAnomalyResponses(report.Anomalies),
		Leaks:                 NewLeakResponses(report.Leaks),
		MonthlyRecurringTotal: report.MonthlyRecurringTotal().StringFixed(2),
		GeneratedAt:           report.GeneratedAt,
	}
}
