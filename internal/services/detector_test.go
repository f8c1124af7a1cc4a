package services

import (
	"testing"
	"time"

	"fre-insights/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// expense builds a stored expense; an empty category leaves it uncategorized
func expense(userID uuid.UUID, merchant string, on time.Time, amount string, category string) models.Transaction {
	tx := models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        on,
		Description: merchant,
		Merchant:    models.NormalizeMerchant(merchant),
		Amount:      decimal.RequireFromString(amount),
		Direction:   models.DirectionExpense,
		Currency:    "TRY",
	}
	if category != "" {
		id := uuid.New()
		tx.CategoryID = &id
		tx.Category = &models.Category{ID: id, UserID: userID, Name: category}
	}
	return tx
}

func TestResolveLookback(t *testing.T) {
	months, err := resolveLookback(0)
	require.NoError(t, err)
	assert.Equal(t, defaultLookbackMonths, months)

	months, err = resolveLookback(12)
	require.NoError(t, err)
	assert.Equal(t, 12, months)

	for _, bad := range []int{-1, maxLookbackMonths + 1} {
		_, err := resolveLookback(bad)
		assert.ErrorIs(t, err, ErrInvalidLookback)
	}
}

func TestMedianDecimal(t *testing.T) {
	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	assert.True(t, medianDecimal(nil).IsZero())
	assert.True(t, d("99.90").Equal(medianDecimal([]decimal.Decimal{d("120"), d("99.90"), d("10")})))
	assert.True(t, d("15.25").Equal(medianDecimal([]decimal.Decimal{d("20"), d("10"), d("10.50"), d("40")})))
}
