package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Date format keys accepted by the importer
const (
	DateFormatISO = "iso"
	DateFormatDMY = "dd.mm.yyyy"
	DateFormatMDY = "mm/dd/yyyy"
)

// Supported currencies offered by the upload form; any 3-letter code is stored as-is.
const (
	CurrencyTRY = "TRY"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// DefaultPreviewRows is the number of data rows returned by a CSV preview
const DefaultPreviewRows = 20

// ColumnMapping addresses CSV cells by zero-based column index
type ColumnMapping struct {
	Date        int  `json:"date"`
	Description int  `json:"description"`
	Amount      int  `json:"amount"`
	Type        *int `json:"type,omitempty"`
	Reference   *int `json:"reference,omitempty"`
	HasHeader   bool `json:"has_header"`
}

// Required returns the mandatory column indexes keyed by field name
func (m ColumnMapping) Required() map[string]int {
	return map[string]int{
		"date":        m.Date,
		"description": m.Description,
		"amount":      m.Amount,
	}
}

// MaxIndex returns the highest mapped column index
func (m ColumnMapping) MaxIndex() int {
	highest := m.Date
	for _, idx := range []int{m.Description, m.Amount} {
		if idx > highest {
			highest = idx
		}
	}
	if m.Type != nil && *m.Type > highest {
		highest = *m.Type
	}
	if m.Reference != nil && *m.Reference > highest {
		highest = *m.Reference
	}
	return highest
}

// ImportRequest carries everything needed to import one file
type ImportRequest struct {
	UserID         uuid.UUID
	FileName       string
	Mapping        ColumnMapping
	Currency       string
	DateFormat     string
	AutoCategorize bool
}

// RowError records why a single input row was not imported
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

func (e RowError) String() string {
	if e.Field == "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Message)
	}
	return fmt.Sprintf("row %d: %s %q: %s", e.Row, e.Field, e.Value, e.Message)
}

// ImportResult summarizes an import. Imported + Skipped + Malformed always equals Total.
type ImportResult struct {
	Imported  int           `json:"imported"`
	Skipped   int           `json:"skipped"`
	Malformed int           `json:"malformed"`
	Total     int           `json:"total"`
	Errors    []RowError    `json:"errors"`
	Duration  time.Duration `json:"-"`
}

// IsBalanced checks the row accounting invariant
func (r *ImportResult) IsBalanced() bool {
	return r.Imported+r.Skipped+r.Malformed == r.Total
}

// CSVPreview is the header row plus a bounded sample of data rows
type CSVPreview struct {
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
	TotalRows int        `json:"total_rows"`
}
