package dto

import (
	"strconv"
	"time"

	"fre-insights/internal/models"

	"github.com/google/uuid"
)

// ImportForm holds the multipart fields sent next to the uploaded file.
// Column indexes are zero-based and kept as strings so a missing field can be told apart from 0.
type ImportForm struct {
	DateColumn        string `form:"dateColumn" validate:"required,number"`
	DescriptionColumn string `form:"descriptionColumn" validate:"required,number"`
	AmountColumn      string `form:"amountColumn" validate:"required,number"`
	TypeColumn        string `form:"typeColumn" validate:"omitempty,number"`
	ReferenceColumn   string `form:"referenceColumn" validate:"omitempty,number"`
	Currency          string `form:"currency" validate:"required,currency"`
	DateFormat        string `form:"dateFormat" validate:"required,date_format"`
	HasHeader         string `form:"hasHeader" validate:"omitempty,boolean"`
	AutoCategorize    string `form:"autoCategorize" validate:"omitempty,boolean"`
}

// Mapping converts the validated column fields into a column mapping
func (f ImportForm) Mapping() models.ColumnMapping {
	mapping := models.ColumnMapping{
		Date:        atoi(f.DateColumn),
		Description: atoi(f.DescriptionColumn),
		Amount:      atoi(f.AmountColumn),
		HasHeader:   parseBool(f.HasHeader, false),
	}
	if f.TypeColumn != "" {
		idx := atoi(f.TypeColumn)
		mapping.Type = &idx
	}
	if f.ReferenceColumn != "" {
		idx := atoi(f.ReferenceColumn)
		mapping.Reference = &idx
	}
	return mapping
}

// Request builds the import request; autoCategorizeDefault applies when the field was omitted
func (f ImportForm) Request(userID uuid.UUID, fileName string, autoCategorizeDefault bool) models.ImportRequest {
	return models.ImportRequest{
		UserID:         userID,
		FileName:       fileName,
		Mapping:        f.Mapping(),
		Currency:       f.Currency,
		DateFormat:     f.DateFormat,
		AutoCategorize: parseBool(f.AutoCategorize, autoCategorizeDefault),
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseBool(s string, fallback bool) bool {
	if s == "" {
		return fallback
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return b
}

// ImportResponse is the outcome of one import
type ImportResponse struct {
	Imported   int               `json:"imported"`
	Skipped    int               `json:"skipped"`
	Malformed  int               `json:"malformed"`
	Total      int               `json:"total"`
	Errors     []models.RowError `json:"errors"`
	DurationMs int64             `json:"durationMs"`
}

// NewImportResponse converts an import result
func NewImportResponse(result *models.ImportResult) ImportResponse {
	errs := result.Errors
	if errs == nil {
		errs = []models.RowError{}
	}
	return ImportResponse{
		Imported:   result.Imported,
		Skipped:    result.Skipped,
		Malformed:  result.Malformed,
		Total:      result.Total,
		Errors:     errs,
		DurationMs: result.Duration.Milliseconds(),
	}
}

// PreviewResponse shows the first rows of an uploaded file so the user can map columns
type PreviewResponse struct {
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
	TotalRows int        `json:"totalRows"`
}

// ImportBatchResponse is one entry of the import history
type ImportBatchResponse struct {
	ID         uuid.UUID         `json:"id"`
	FileName   string            `json:"fileName,omitempty"`
	Currency   string            `json:"currency"`
	DateFormat string            `json:"dateFormat"`
	Status     string            `json:"status"`
	Imported   int               `json:"imported"`
	Skipped    int               `json:"skipped"`
	Malformed  int               `json:"malformed"`
	Total      int               `json:"total"`
	DurationMs int64             `json:"durationMs"`
	Errors     []models.RowError `json:"errors,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// ImportHistoryResponse lists past imports, newest first
type ImportHistoryResponse struct {
	Imports    []ImportBatchResponse `json:"imports"`
	Pagination OffsetPagination      `json:"pagination"`
}

// NewImportHistoryResponse converts stored batches
func NewImportHistoryResponse(batches []*models.ImportBatch, total int64, offset, limit int) ImportHistoryResponse {
	imports := make([]ImportBatchResponse, 0, len(batches))
	for _, b := range batches {
		imports = append(imports, ImportBatchResponse{
			ID:         b.ID,
			FileName:   b.FileName,
			Currency:   b.Currency,
			DateFormat: b.DateFormat,
			Status:     b.Status,
			Imported:   b.Imported,
			Skipped:    b.Skipped,
			Malformed:  b.Malformed,
			Total:      b.Total,
			DurationMs: b.DurationMs,
			Errors:     b.Errors,
			CreatedAt:  b.CreatedAt,
		})
	}
	return ImportHistoryResponse{
		Imports:    imports,
		Pagination: OffsetPagination{Offset: offset, Limit: limit, Total: total},
	}
}

// PageQuery is the offset/limit pair shared by list endpoints
type PageQuery struct {
	Offset int `query:"offset" validate:"min=0"`
	Limit  int `query:"limit" validate:"min=0,max=500"`
}

// OffsetPagination describes the page that was returned
type OffsetPagination struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

// GenerateHistoryQuery controls the development history generator
type GenerateHistoryQuery struct {
	Months   int    `query:"months" validate:"min=0,max=36"`
	Currency string `query:"currency" validate:"omitempty,currency"`
	Seed     uint64 `query:"seed"`
}

// Resolve applies the defaults: six months of TRY
func (q GenerateHistoryQuery) Resolve() (int, string) {
	months, currency := q.Months, q.Currency
	if months == 0 {
		months = 6
	}
	if currency == "" {
		currency = models.CurrencyTRY
	}
	return months, currency
}
