package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"fre-insights/internal/dto"
	"fre-insights/internal/errors"
	"fre-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// InsightsHandler exposes the detectors individually and as the insights bundle
type InsightsHandler struct {
	subscriptions services.SubscriptionDetectorInterface
	anomalies     services.AnomalyDetectorInterface
	leaks         services.LeakFinderInterface
	insights      services.InsightsServiceInterface
	now           func() time.Time
}

func NewInsightsHandler(
	subscriptions services.SubscriptionDetectorInterface,
	anomalies services.AnomalyDetectorInterface,
	leaks services.LeakFinderInterface,
	insights services.InsightsServiceInterface,
) *InsightsHandler {
	return &InsightsHandler{
		subscriptions: subscriptions,
		anomalies:     anomalies,
		leaks:         leaks,
		insights:      insights,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Subscriptions lists recurring charges found in the lookback window
// @Summary Detect subscriptions
// @Tags Insights
// @Produce json
// @Param lookbackMonths query int false "Months of history to scan (1-36)" default(6)
// @Param asOf query string false "Evaluation date (YYYY-MM-DD)"
// @Success 200 {object} dto.SubscriptionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / INSIGHTS_002"
// @Router /insights/subscriptions [get]
func (h *InsightsHandler) Subscriptions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingID)
	}

	var q dto.SubscriptionsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	findings, err := h.subscriptions.DetectSubscriptions(c.Request().Context(), userID, q.LookbackMonths, q.AsOfTime(h.now()))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SubscriptionsResponse{
		Subscriptions: dto.NewSubscriptionResponses(findings),
	})
}

// Anomalies lists the month's transactions far above their baseline
// @Summary Detect anomalies
// @Tags Insights
// @Produce json
// @Param month query int false "Month (1-12), defaults to the current month"
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} dto.AnomaliesResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / INSIGHTS_001"
// @Router /insights/anomalies [get]
func (h *InsightsHandler) Anomalies(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingID)
	}

	var q dto.PeriodQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	month, year := q.Resolve(h.now())

	findings, err := h.anomalies.DetectAnomalies(c.Request().Context(), userID, month, year)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AnomaliesResponse{
		Month:     month,
		Year:      year,
		Anomalies: dto.NewAnomalyResponses(findings),
	})
}

// Leaks ranks categories by month-over-month spending growth
// @Summary Find spending leaks
// @Tags Insights
// @Produce json
// @Param month query int false "Month (1-12), defaults to the current month"
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} dto.LeaksResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / INSIGHTS_001"
// @Router /insights/leaks [get]
func (h *InsightsHandler) Leaks(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingID)
	}

	var q dto.PeriodQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	month, year := q.Resolve(h.now())

	findings, err := h.leaks.FindTopLeaks(c.Request().Context(), userID, month, year)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.LeaksResponse{
		Month: month,
		Year:  year,
		Leaks: dto.NewLeakResponses(findings),
	})
}

// Bundle runs all detectors for one month
// @Summary Insights bundle
// @Tags Insights
// @Produce json
// @Param month query int false "Month (1-12), defaults to the current month"
// @Param year query int false "Year, defaults to the current year"
// @Param lookbackMonths query int false "Subscription lookback (1-36)" default(6)
// @Success 200 {object} dto.InsightsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / INSIGHTS_001 / INSIGHTS_002"
// @Failure 500 {object} errors.ErrorResponse "INSIGHTS_003 - A detector failed"
// @Router /insights [get]
func (h *InsightsHandler) Bundle(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingID)
	}

	var q dto.InsightsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	month, year := q.Resolve(h.now())

	report, err := h.insights.GetInsights(c.Request().Context(), userID, month, year, q.LookbackMonths)
	if err != nil {
		if _, known := serviceErrorCode(err); known {
			return SendServiceError(c, err)
		}
		slog.Error("insights bundle failed",
			"trace_id", getTraceID(c),
			"user_id", userID,
			"month", month,
			"year", year,
			"error", err,
		)
		return SendError(c, errors.InsightsDetectionFailed)
	}

	return c.JSON(http.StatusOK, dto.NewInsightsResponse(report))
}
