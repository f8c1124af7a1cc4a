package importer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fre-insights/internal/models"
)

var (
	ErrInvalidMapping      = errors.New("invalid column mapping")
	ErrMissingCurrency     = errors.New("currency is required")
	ErrMissingColumn       = errors.New("row is missing a mapped column")
	ErrEmptyDescription    = errors.New("description is empty")
	ErrDescriptionTooLong  = errors.New("description is too long")
	ErrZeroAmount          = errors.New("amount must not be zero")
	ErrBlankRow            = errors.New("row is blank")
	ErrReferenceTooLong    = errors.New("reference is too long")
	errUnrecognizedTypeVal = errors.New("unrecognized type value")
)

const (
	maxDescriptionLength = 500
	maxReferenceLength   = 100
	excerptRunes         = 32
)

// Type column vocabularies, matched case-insensitively after trimming.
var (
	incomeTypes = map[string]struct{}{
		"income": {}, "credit": {}, "cr": {}, "c": {}, "deposit": {}, "in": {},
		"gelir": {}, "alacak": {},
	}
	expenseTypes = map[string]struct{}{
		"expense": {}, "debit": {}, "dr": {}, "d": {}, "withdrawal": {}, "payment": {}, "out": {},
		"gider": {}, "borç": {}, "borc": {},
	}
)

// Row is a normalized transaction candidate. Amount is an unsigned magnitude.
type Row struct {
	Line        int
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Direction   string
	Currency    string
	SourceRef   string
}

// SignedAmount returns the amount negated for expenses
func (r Row) SignedAmount() decimal.Decimal {
	if r.Direction == models.DirectionExpense {
		return r.Amount.Neg()
	}
	return r.Amount
}

// ParseError describes a single row that could not be normalized
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RowError converts the parse error into its reportable form
func (e *ParseError) RowError() models.RowError {
	return models.RowError{
		Row:     e.Line,
		Field:   e.Field,
		Value:   e.Value,
		Message: e.Err.Error(),
	}
}

// Normalizer maps decoded CSV rows onto transaction candidates
type Normalizer struct {
	mapping    models.ColumnMapping
	currency   string
	dateFormat string
}

// NewNormalizer validates the mapping and declared formats up front
func NewNormalizer(mapping models.ColumnMapping, currency, dateFormat string) (*Normalizer, error) {
	if err := ValidateMapping(mapping); err != nil {
		return nil, err
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return nil, ErrMissingCurrency
	}
	if !models.IsValidCurrency(currency) {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidCurrency, currency)
	}
	if !IsSupportedDateFormat(dateFormat) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDateFormat, dateFormat)
	}

	return &Normalizer{
		mapping:    mapping,
		currency:   currency,
		dateFormat: dateFormat,
	}, nil
}

// ValidateMapping checks that the required columns are set and no column is used twice
func ValidateMapping(m models.ColumnMapping) error {
	seen := make(map[int]string)
	for _, field := range []string{"date", "description", "amount"} {
		idx := m.Required()[field]
		if idx < 0 {
			return fmt.Errorf("%w: %s column is required", ErrInvalidMapping, field)
		}
		if other, ok := seen[idx]; ok {
			return fmt.Errorf("%w: %s and %s share column %d", ErrInvalidMapping, other, field, idx)
		}
		seen[idx] = field
	}

	optional := []struct {
		name string
		idx  *int
	}{
		{"type", m.Type},
		{"reference", m.Reference},
	}
	for _, opt := range optional {
		if opt.idx == nil {
			continue
		}
		if *opt.idx < 0 {
			return fmt.Errorf("%w: %s column index must not be negative", ErrInvalidMapping, opt.name)
		}
		if other, ok := seen[*opt.idx]; ok {
			return fmt.Errorf("%w: %s and %s share column %d", ErrInvalidMapping, other, opt.name, *opt.idx)
		}
		seen[*opt.idx] = opt.name
	}
	return nil
}

// DataRows drops the header row when the mapping declares one
func (n *Normalizer) DataRows(records [][]string) [][]string {
	if n.mapping.HasHeader && len(records) > 0 {
		return records[1:]
	}
	return records
}

// FirstDataLine returns the 1-based file line of the first data row
func (n *Normalizer) FirstDataLine() int {
	if n.mapping.HasHeader {
		return 2
	}
	return 1
}

// Normalize converts every data row, collecting per-row failures instead of stopping
func (n *Normalizer) Normalize(records [][]string) ([]Row, []*ParseError) {
	data := n.DataRows(records)
	rows := make([]Row, 0, len(data))
	var failures []*ParseError

	line := n.FirstDataLine()
	for _, cells := range data {
		row, err := n.NormalizeRow(line, cells)
		if err != nil {
			failures = append(failures, err)
		} else {
			rows = append(rows, *row)
		}
		line++
	}
	return rows, failures
}

// NormalizeRow converts a single row of cells
func (n *Normalizer) NormalizeRow(line int, cells []string) (*Row, *ParseError) {
	if isBlank(cells) {
		return nil, &ParseError{Line: line, Err: ErrBlankRow}
	}
	if len(cells) <= n.mapping.MaxIndex() {
		return nil, &ParseError{
			Line: line,
			Err:  fmt.Errorf("%w: got %d cells, need %d", ErrMissingColumn, len(cells), n.mapping.MaxIndex()+1),
		}
	}

	rawDate := cells[n.mapping.Date]
	date, err := ParseDate(rawDate, n.dateFormat)
	if err != nil {
		return nil, &ParseError{Line: line, Field: "date", Value: rawDate, Err: err}
	}

	rawAmount := cells[n.mapping.Amount]
	signed, err := ParseAmount(rawAmount)
	if err != nil {
		return nil, &ParseError{Line: line, Field: "amount", Value: rawAmount, Err: err}
	}
	if signed.IsZero() {
		return nil, &ParseError{Line: line, Field: "amount", Value: rawAmount, Err: ErrZeroAmount}
	}

	description := models.NormalizeDescription(cells[n.mapping.Description])
	if description == "" {
		return nil, &ParseError{Line: line, Field: "description", Err: ErrEmptyDescription}
	}
	if len(description) > maxDescriptionLength {
		return nil, &ParseError{Line: line, Field: "description", Value: excerpt(description), Err: ErrDescriptionTooLong}
	}

	direction := directionFromSign(signed)
	if n.mapping.Type != nil {
		if d, err := directionFromType(cells[*n.mapping.Type]); err == nil {
			direction = d
		}
	}

	var ref string
	if n.mapping.Reference != nil {
		ref = strings.TrimSpace(cells[*n.mapping.Reference])
		if len(ref) > maxReferenceLength {
			return nil, &ParseError{Line: line, Field: "reference", Value: excerpt(ref), Err: ErrReferenceTooLong}
		}
	}

	return &Row{
		Line:        line,
		Date:        date,
		Description: description,
		Amount:      signed.Abs(),
		Direction:   direction,
		Currency:    n.currency,
		SourceRef:   ref,
	}, nil
}

func directionFromSign(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return models.DirectionExpense
	}
	return models.DirectionIncome
}

// directionFromType matches a type cell against the income/expense vocabularies
func directionFromType(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if _, ok := incomeTypes[v]; ok {
		return models.DirectionIncome, nil
	}
	if _, ok := expenseTypes[v]; ok {
		return models.DirectionExpense, nil
	}
	return "", errUnrecognizedTypeVal
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// excerpt shortens an oversized value for error reports without splitting a rune
func excerpt(value string) string {
	runes := []rune(value)
	if len(runes) <= excerptRunes {
		return value
	}
	return string(runes[:excerptRunes]) + "..."
}
