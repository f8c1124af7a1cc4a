package importer

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fre-insights/internal/models"
)

func intPtr(v int) *int { return &v }

func basicMapping() models.ColumnMapping {
	return models.ColumnMapping{Date: 0, Description: 1, Amount: 2, HasHeader: true}
}

func TestValidateMapping(t *testing.T) {
	tests := []struct {
		name    string
		mapping models.ColumnMapping
		wantErr bool
	}{
		{"valid", basicMapping(), false},
		{"valid with optional columns", models.ColumnMapping{Date: 0, Description: 1, Amount: 2, Type: intPtr(3), Reference: intPtr(4)}, false},
		{"negative date", models.ColumnMapping{Date: -1, Description: 1, Amount: 2}, true},
		{"negative amount", models.ColumnMapping{Date: 0, Description: 1, Amount: -1}, true},
		{"shared required column", models.ColumnMapping{Date: 0, Description: 0, Amount: 2}, true},
		{"type reuses amount column", models.ColumnMapping{Date: 0, Description: 1, Amount: 2, Type: intPtr(2)}, true},
		{"negative reference", models.ColumnMapping{Date: 0, Description: 1, Amount: 2, Reference: intPtr(-3)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMapping(tt.mapping)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMapping)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewNormalizer_Errors(t *testing.T) {
	_, err := NewNormalizer(basicMapping(), "", models.DateFormatISO)
	assert.ErrorIs(t, err, ErrMissingCurrency)

	_, err = NewNormalizer(basicMapping(), "LIRA", models.DateFormatISO)
	assert.ErrorIs(t, err, models.ErrInvalidCurrency)

	_, err = NewNormalizer(basicMapping(), "TRY", "yyyymmdd")
	assert.ErrorIs(t, err, ErrUnsupportedDateFormat)

	_, err = NewNormalizer(models.ColumnMapping{Date: 0, Description: 0, Amount: 1}, "TRY", models.DateFormatISO)
	assert.ErrorIs(t, err, ErrInvalidMapping)
}

func TestNormalizer_DirectionFromSign(t *testing.T) {
	n, err := NewNormalizer(basicMapping(), "try", models.DateFormatISO)
	require.NoError(t, err)

	rows, failures := n.Normalize([][]string{
		{"date", "description", "amount"},
		{"2024-03-01", "NETFLIX.COM", "-99.90"},
		{"2024-03-15", "ACME PAYROLL", "45,000.00"},
		{"2024-03-16", "  REFUND   SHOP ", "(12.00)"},
	})

	require.Empty(t, failures)
	require.Len(t, rows, 3)

	assert.Equal(t, models.DirectionExpense, rows[0].Direction)
	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("99.90")))
	assert.Equal(t, "TRY", rows[0].Currency)
	assert.Equal(t, 2, rows[0].Line)

	assert.Equal(t, models.DirectionIncome, rows[1].Direction)
	assert.True(t, rows[1].Amount.Equal(decimal.NewFromInt(45000)))

	assert.Equal(t, models.DirectionExpense, rows[2].Direction)
	assert.Equal(t, "REFUND SHOP", rows[2].Description)
	assert.True(t, rows[2].SignedAmount().Equal(decimal.NewFromInt(-12)))
}

func TestNormalizer_DirectionFromTypeColumn(t *testing.T) {
	mapping := basicMapping()
	mapping.Type = intPtr(3)
	n, err := NewNormalizer(mapping, "TRY", models.DateFormatISO)
	require.NoError(t, err)

	tests := []struct {
		typeCell string
		amount   string
		want     string
	}{
		{"Expense", "99.90", models.DirectionExpense},
		{" DEBIT ", "99.90", models.DirectionExpense},
		{"gider", "99.90", models.DirectionExpense},
		{"Borç", "99.90", models.DirectionExpense},
		{"income", "-99.90", models.DirectionIncome},
		{"Credit", "99.90", models.DirectionIncome},
		{"Alacak", "99.90", models.DirectionIncome},
		{"transfer", "-99.90", models.DirectionExpense},
		{"", "99.90", models.DirectionIncome},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.typeCell, tt.amount), func(t *testing.T) {
			row, perr := n.NormalizeRow(2, []string{"2024-03-01", "SHOP", tt.amount, tt.typeCell})
			require.Nil(t, perr)
			assert.Equal(t, tt.want, row.Direction)
			assert.True(t, row.Amount.IsPositive())
		})
	}
}

func TestNormalizer_RowErrors(t *testing.T) {
	n, err := NewNormalizer(basicMapping(), "TRY", models.DateFormatDMY)
	require.NoError(t, err)

	tests := []struct {
		name      string
		cells     []string
		wantField string
		wantErr   error
	}{
		{"bad date", []string{"2024-03-15", "SHOP", "10,00"}, "date", ErrInvalidDate},
		{"bad amount", []string{"15.03.2024", "SHOP", "ten"}, "amount", ErrInvalidAmount},
		{"empty amount", []string{"15.03.2024", "SHOP", ""}, "amount", ErrEmptyAmount},
		{"zero amount", []string{"15.03.2024", "SHOP", "0,00"}, "amount", ErrZeroAmount},
		{"empty description", []string{"15.03.2024", "  ", "10,00"}, "description", ErrEmptyDescription},
		{"too few cells", []string{"15.03.2024", "SHOP"}, "", ErrMissingColumn},
		{"blank row", []string{"", " ", ""}, "", ErrBlankRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, perr := n.NormalizeRow(7, tt.cells)
			assert.Nil(t, row)
			require.NotNil(t, perr)
			assert.Equal(t, 7, perr.Line)
			assert.Equal(t, tt.wantField, perr.Field)
			assert.ErrorIs(t, perr, tt.wantErr)
		})
	}
}

func TestNormalizer_ContinuesPastMalformedRows(t *testing.T) {
	n, err := NewNormalizer(basicMapping(), "TRY", models.DateFormatISO)
	require.NoError(t, err)

	records := [][]string{{"date", "description", "amount"}}
	for i := 1; i <= 10; i++ {
		records = append(records, []string{fmt.Sprintf("2024-03-%02d", i), fmt.Sprintf("SHOP %d", i), "-10.00"})
	}
	records = append(records,
		[]string{"2024-03-11", "BROKEN", "n/a"},
		[]string{"2024-03-12", "BROKEN", "--5"},
	)

	rows, failures := n.Normalize(records)
	assert.Len(t, rows, 10)
	require.Len(t, failures, 2)
	assert.Equal(t, 12, failures[0].Line)
	assert.Equal(t, 13, failures[1].Line)

	rowErr := failures[0].RowError()
	assert.Equal(t, "amount", rowErr.Field)
	assert.Equal(t, "n/a", rowErr.Value)
}

func TestNormalizer_NoHeader(t *testing.T) {
	mapping := basicMapping()
	mapping.HasHeader = false
	n, err := NewNormalizer(mapping, "USD", models.DateFormatMDY)
	require.NoError(t, err)

	rows, failures := n.Normalize([][]string{{"03/15/2024", "SPOTIFY", "-9.99"}})
	require.Empty(t, failures)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), rows[0].Date)
}

func TestNormalizer_BankExport(t *testing.T) {
	data, err := os.ReadFile("../../testdata/garanti_2024q1.csv")
	require.NoError(t, err)

	records, err := Decode(data)
	require.NoError(t, err)

	n, err := NewNormalizer(models.ColumnMapping{
		Date: 0, Description: 1, Amount: 2, Type: intPtr(3), Reference: intPtr(4), HasHeader: true,
	}, models.CurrencyTRY, models.DateFormatDMY)
	require.NoError(t, err)

	rows, failures := n.Normalize(records)
	assert.Len(t, rows, 9)
	require.Len(t, failures, 1)
	assert.Equal(t, 11, failures[0].Line)

	assert.Equal(t, "TX-0001", rows[0].SourceRef)
	assert.True(t, rows[2].Amount.Equal(decimal.NewFromInt(45000)))
	assert.Equal(t, models.DirectionIncome, rows[2].Direction)
	assert.True(t, rows[7].Amount.Equal(decimal.RequireFromString("1204.10")))
}

func TestNormalizeRow_OversizedTurkishDescriptionExcerpt(t *testing.T) {
	n, err := NewNormalizer(basicMapping(), "TRY", models.DateFormatISO)
	require.NoError(t, err)

	// "Ş" is two bytes, so a byte cut at 32 would land inside a rune
	description := "A" + strings.Repeat("Ş", 300)
	_, parseErr := n.NormalizeRow(2, []string{"2024-03-01", description, "-10.00"})

	require.NotNil(t, parseErr)
	assert.ErrorIs(t, parseErr, ErrDescriptionTooLong)
	assert.True(t, utf8.ValidString(parseErr.Value))
	assert.Equal(t, "A"+strings.Repeat("Ş", 31)+"...", parseErr.Value)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", excerpt("short"))
	assert.Equal(t, strings.Repeat("ğ", 32)+"...", excerpt(strings.Repeat("ğ", 40)))
}
