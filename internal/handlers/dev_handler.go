package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"fre-insights/internal/dto"
	"fre-insights/internal/errors"
	"fre-insights/internal/models"
	"fre-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	importService services.ImportServiceInterface
	newGenerator  func(seed uint64) services.HistoryGeneratorInterface
	now           func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(importService services.ImportServiceInterface) *DevHandler {
	return &DevHandler{
		importService: importService,
		newGenerator:  services.NewHistoryGenerator,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// GenerateHistory generates a realistic transaction history ending today and imports it
//
// Method: POST /api/v1/dev/generate-history
// Environment: Development only
//
// Query parameters:
//   - months: Months of history to generate (default: 6, max: 36)
//   - currency: Currency of the generated rows (default: TRY)
//   - seed: Generator seed; 0 picks a random history
//
// The rows go through the regular import, so repeating the call with the same
// history only reports skipped duplicates.
func (h *DevHandler) GenerateHistory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingID)
	}

	// DefaultBinder only reads query params for GET and DELETE
	var q dto.GenerateHistoryQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return err
	}
	if err := c.Validate(&q); err != nil {
		return err
	}
	months, currency := q.Resolve()

	generator := h.newGenerator(q.Seed)
	end := h.now()
	transactions := generator.Generate(userID, end.AddDate(0, -months, 0), end, currency)

	var buf bytes.Buffer
	if err := generator.WriteCSV(&buf, transactions); err != nil {
		return SendSystemError(c, fmt.Errorf("failed to render generated history: %w", err))
	}

	result, err := h.importService.ImportTransactions(c.Request().Context(), userID, buf.Bytes(), models.ImportRequest{
		FileName:       "generated.csv",
		Mapping:        services.GeneratedCSVMapping(),
		Currency:       currency,
		DateFormat:     models.DateFormatISO,
		AutoCategorize: true,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewImportResponse(result))
}
