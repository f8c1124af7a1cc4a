package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"fre-insights/internal/importer"
	"fre-insights/internal/models"
	"fre-insights/internal/repositories"

	"github.com/google/uuid"
)

// Fingerprint derives the duplicate-detection key of a row. The source reference
// takes part only when the file supplied one, which separates same-day repeats.
// Descriptions compare case-insensitively with runs of whitespace collapsed.
func Fingerprint(userID uuid.UUID, row importer.Row) string {
	parts := []string{
		userID.String(),
		row.Date.Format("2006-01-02"),
		row.SignedAmount().StringFixed(2),
		strings.ToUpper(models.NormalizeDescription(row.Description)),
		strings.ToUpper(row.Currency),
	}
	if row.SourceRef != "" {
		parts = append(parts, row.SourceRef)
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// Deduplicator answers whether a fingerprint is already stored or already accepted in the current batch.
// It is scoped to one user and one import; it is not safe for concurrent use.
type Deduplicator struct {
	transactionRepo repositories.TransactionRepositoryInterface
	userID          uuid.UUID
	accepted        map[string]struct{}
}

func NewDeduplicator(transactionRepo repositories.TransactionRepositoryInterface, userID uuid.UUID) *Deduplicator {
	return &Deduplicator{
		transactionRepo: transactionRepo,
		userID:          userID,
		accepted:        make(map[string]struct{}),
	}
}

// IsDuplicate has no side effects; call Accept once the row is persisted
func (d *Deduplicator) IsDuplicate(ctx context.Context, fingerprint string) (bool, error) {
	if _, ok := d.accepted[fingerprint]; ok {
		return true, nil
	}

	exists, err := d.transactionRepo.ExistsByFingerprint(ctx, d.userID, fingerprint)
	if err != nil {
		return false, fmt.Errorf("failed to check fingerprint: %w", err)
	}
	return exists, nil
}

func (d *Deduplicator) Accept(fingerprint string) {
	d.accepted[fingerprint] = struct{}{}
}
