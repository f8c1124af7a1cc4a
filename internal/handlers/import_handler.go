package handlers

import (
	"net/http"

	"fre-insights/internal/config"
	"fre-insights/internal/dto"
	"fre-insights/internal/errors"
	"fre-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// ImportHandler handles CSV uploads and the import history
type ImportHandler struct {
	importService services.ImportServiceInterface
	cfg           config.ImportConfig
}

func NewImportHandler(importService services.ImportServiceInterface, cfg config.ImportConfig) *ImportHandler {
	return &ImportHandler{importService: importService, cfg: cfg}
}

// Preview returns the header and first rows of an uploaded file
// @Summary Preview CSV file
// @Tags Imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV export"
// @Param rows query int false "Number of data rows" default(20)
// @Success 200 {object} dto.PreviewResponse
// @Failure 400 {object} errors.ErrorResponse "IMPORT_001 - File is not readable CSV"
// @Failure 413 {object} errors.ErrorResponse "IMPORT_002 - File too large"
// @Router /imports/preview [post]
func (h *ImportHandler) Preview(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.UserMissingID)
	}

	up, err := readUpload(c, h.cfg.MaxUploadBytes)
	if up == nil {
		return err
	}

	var q struct {
		Rows int `query:"rows" validate:"min=0,max=100"`
	}
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return err
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	preview, err := h.importService.Preview(up.data, q.Rows)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PreviewResponse{
		Headers:   preview.Headers,
		Rows:      preview.Rows,
		TotalRows: preview.TotalRows,
	})
}

// Import normalizes, deduplicates and stores the rows of an uploaded file.
// Row-level problems are reported in the body; only request-level problems fail the call.
// @Summary Import transactions from CSV
// @Tags Imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV export"
// @Param dateColumn formData int true "Zero-based date column"
// @Param descriptionColumn formData int true "Zero-based description column"
// @Param amountColumn formData int true "Zero-based amount column"
// @Param typeColumn formData int false "Zero-based debit/credit column"
// @Param referenceColumn formData int false "Zero-based bank reference column"
// @Param currency formData string true "ISO currency code"
// @Param dateFormat formData string true "Date format" Enums(iso, dd.mm.yyyy, mm/dd/yyyy)
// @Param hasHeader formData bool false "First row is a header"
// @Param autoCategorize formData bool false "Assign categories to imported rows"
// @Success 200 {object} dto.ImportResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / IMPORT_001 / IMPORT_003 / IMPORT_004 / IMPORT_005"
// @Failure 413 {object} errors.ErrorResponse "IMPORT_002 - File too large"
// @Router /imports [post]
func (h *ImportHandler) Import(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingID)
	}

	var form dto.ImportForm
	if err := bindAndValidate(c, &form); err != nil {
		return err
	}

	up, err := readUpload(c, h.cfg.MaxUploadBytes)
	if up == nil {
		return err
	}

	req := form.Request(userID, up.name, h.cfg.AutoCategorize)
	result, err := h.importService.ImportTransactions(c.Request().Context(), userID, up.data, req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewImportResponse(result))
}

// History lists the user's past imports, newest first
// @Summary Import history
// @Tags Imports
// @Produce json
// @Param offset query int false "Offset"
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ImportHistoryResponse
// @Router /imports [get]
func (h *ImportHandler) History(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.UserMissingID)
	}

	var page dto.PageQuery
	if err := bindAndValidate(c, &page); err != nil {
		return err
	}

	batches, total, err := h.importService.GetImportHistory(c.Request().Context(), userID, page.Offset, page.Limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	offset, limit := services.HistoryPage(page.Offset, page.Limit)
	return c.JSON(http.StatusOK, dto.NewImportHistoryResponse(batches, total, offset, limit))
}
