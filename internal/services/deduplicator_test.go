package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fre-insights/internal/importer"
	"fre-insights/internal/models"
	"fre-insights/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func netflixRow() importer.Row {
	return importer.Row{
		Line:        2,
		Date:        time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Description: "NETFLIX.COM",
		Amount:      decimal.RequireFromString("99.90"),
		Direction:   models.DirectionExpense,
		Currency:    "TRY",
	}
}

func TestFingerprint(t *testing.T) {
	userID := uuid.New()
	base := netflixRow()

	t.Run("stable for identical rows", func(t *testing.T) {
		assert.Equal(t, Fingerprint(userID, base), Fingerprint(userID, base))
		assert.Len(t, Fingerprint(userID, base), 64)
	})

	t.Run("ignores description case and spacing", func(t *testing.T) {
		other := base
		other.Description = "  netflix.com "
		assert.Equal(t, Fingerprint(userID, base), Fingerprint(userID, other))
	})

	t.Run("ignores line number", func(t *testing.T) {
		other := base
		other.Line = 40
		assert.Equal(t, Fingerprint(userID, base), Fingerprint(userID, other))
	})

	variants := map[string]func(r *importer.Row){
		"date":      func(r *importer.Row) { r.Date = r.Date.AddDate(0, 0, 1) },
		"amount":    func(r *importer.Row) { r.Amount = decimal.RequireFromString("99.91") },
		"direction": func(r *importer.Row) { r.Direction = models.DirectionIncome },
		"currency":  func(r *importer.Row) { r.Currency = "USD" },
		"reference": func(r *importer.Row) { r.SourceRef = "TX-1" },
	}
	for field, mutate := range variants {
		t.Run("differs by "+field, func(t *testing.T) {
			other := base
			mutate(&other)
			assert.NotEqual(t, Fingerprint(userID, base), Fingerprint(userID, other))
		})
	}

	t.Run("scoped per user", func(t *testing.T) {
		assert.NotEqual(t, Fingerprint(userID, base), Fingerprint(uuid.New(), base))
	})
}

func TestDeduplicator(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository_mocks.NewMockTransactionRepositoryInterface(ctrl)
	ctx := context.Background()
	userID := uuid.New()

	dedup := NewDeduplicator(repo, userID)

	t.Run("consults the store for unseen fingerprints", func(t *testing.T) {
		repo.EXPECT().ExistsByFingerprint(ctx, userID, "stored").Return(true, nil)
		repo.EXPECT().ExistsByFingerprint(ctx, userID, "fresh").Return(false, nil).Times(2)

		dup, err := dedup.IsDuplicate(ctx, "stored")
		require.NoError(t, err)
		assert.True(t, dup)

		// repeated calls give the same answer until Accept
		for i := 0; i < 2; i++ {
			dup, err = dedup.IsDuplicate(ctx, "fresh")
			require.NoError(t, err)
			assert.False(t, dup)
		}
	})

	t.Run("accepted fingerprints are duplicates without a lookup", func(t *testing.T) {
		dedup.Accept("batch")

		dup, err := dedup.IsDuplicate(ctx, "batch")
		require.NoError(t, err)
		assert.True(t, dup)
	})

	t.Run("store failure", func(t *testing.T) {
		repo.EXPECT().ExistsByFingerprint(ctx, userID, "broken").Return(false, errors.New("connection reset"))

		_, err := dedup.IsDuplicate(ctx, "broken")
		assert.ErrorContains(t, err, "failed to check fingerprint")
	})
}
