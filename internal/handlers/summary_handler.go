package handlers

import (
	"net/http"
	"time"

	"fre-insights/internal/dto"
	"fre-insights/internal/errors"
	"fre-insights/internal/services"

	"github.com/labstack/echo/v4"
)

type SummaryHandler struct {
	summaryService services.SummaryServiceInterface
	now            func() time.Time
}

func NewSummaryHandler(summaryService services.SummaryServiceInterface) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// GetSummary returns income, expense, top categories and the six-month trend
// @Summary Monthly summary
// @Tags Summary
// @Produce json
// @Param month query int false "Month (1-12), defaults to the current month"
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / INSIGHTS_001"
// @Router /summary [get]
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingID)
	}

	var q dto.PeriodQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	month, year := q.Resolve(h.now())

	summary, err := h.summaryService.GetMonthlySummary(c.Request().Context(), userID, month, year)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSummaryResponse(summary))
}
