package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Import batch outcomes
const (
	ImportStatusCompleted = "completed"
	ImportStatusPartial   = "partial"
	ImportStatusEmpty     = "empty"
	// the import stopped early; the counts cover the rows handled before the failure
	ImportStatusFailed = "failed"
)

// maxStoredRowErrors caps the row errors persisted with a batch
const maxStoredRowErrors = 50

// ImportBatch records one import for the user's import history
type ImportBatch struct {
	ID         uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	FileName   string       `gorm:"type:varchar(255)" json:"file_name,omitempty"`
	Currency   string       `gorm:"type:varchar(3);not null" json:"currency"`
	DateFormat string       `gorm:"type:varchar(20);not null" json:"date_format"`
	Status     string       `gorm:"type:varchar(20);not null" json:"status"`
	Imported   int          `gorm:"not null" json:"imported"`
	Skipped    int          `gorm:"not null" json:"skipped"`
	Malformed  int          `gorm:"not null" json:"malformed"`
	Total      int          `gorm:"not null" json:"total"`
	DurationMs int64        `gorm:"not null" json:"duration_ms"`
	Errors     RowErrorList `gorm:"type:text" json:"errors,omitempty"`
	CreatedAt  time.Time    `gorm:"not null;index" json:"created_at"`
}

// NewImportBatch builds the history record for an import result
func NewImportBatch(req ImportRequest, result *ImportResult) *ImportBatch {
	errs := result.Errors
	if len(errs) > maxStoredRowErrors {
		errs = errs[:maxStoredRowErrors]
	}

	return &ImportBatch{
		UserID:     req.UserID,
		FileName:   req.FileName,
		Currency:   req.Currency,
		DateFormat: req.DateFormat,
		Status:     importStatus(result),
		Imported:   result.Imported,
		Skipped:    result.Skipped,
		Malformed:  result.Malformed,
		Total:      result.Total,
		DurationMs: result.Duration.Milliseconds(),
		Errors:     RowErrorList(errs),
	}
}

func importStatus(result *ImportResult) string {
	switch {
	case result.Total == 0:
		return ImportStatusEmpty
	case result.Malformed > 0:
		return ImportStatusPartial
	default:
		return ImportStatusCompleted
	}
}

func (b *ImportBatch) String() string {
	return fmt.Sprintf("ImportBatch[User: %s, File: %s, Imported: %d, Skipped: %d, Malformed: %d, Time: %s]",
		b.UserID, b.FileName, b.Imported, b.Skipped, b.Malformed, b.CreatedAt.Format(time.RFC3339))
}

func (b *ImportBatch) TableName() string {
	return "import_batches"
}

func (b *ImportBatch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	if b.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	return nil
}

// RowErrorList is stored as a JSON text column
type RowErrorList []RowError

// Value implements driver.Valuer interface
func (l RowErrorList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal([]RowError(l))
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (l *RowErrorList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into RowErrorList", value)
	}

	if len(bytes) == 0 {
		*l = nil
		return nil
	}

	var errs []RowError
	if err := json.Unmarshal(bytes, &errs); err != nil {
		return err
	}
	*l = errs
	return nil
}
