package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DirectionIncome  = "income"
	DirectionExpense = "expense"
)

const (
	maxDescriptionLength = 500
	maxSourceRefLength   = 100
)

var (
	ErrInvalidDirection   = errors.New("invalid transaction direction")
	ErrInvalidAmount      = errors.New("transaction amount must be positive")
	ErrInvalidCurrency    = errors.New("currency must be a 3-letter code")
	ErrMissingUserID      = errors.New("user ID is required")
	ErrMissingDate        = errors.New("transaction date is required")
	ErrMissingDescription = errors.New("transaction description is required")
	ErrMissingFingerprint = errors.New("transaction fingerprint is required")
	ErrDescriptionTooLong = errors.New("transaction description too long")
	ErrSourceRefTooLong   = errors.New("source reference too long")
)

// Transaction is a single normalized bank transaction owned by a user.
// Amount is always an unsigned magnitude; Direction carries the sign.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_transactions_user_fingerprint,priority:1" json:"user_id"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Merchant    string          `gorm:"type:varchar(255);index" json:"merchant"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Direction   string          `gorm:"type:varchar(10);not null;index" json:"direction"`
	Currency    string          `gorm:"type:varchar(3);not null" json:"currency"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	SourceRef   string          `gorm:"type:varchar(100)" json:"source_ref,omitempty"`
	Fingerprint string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_transactions_user_fingerprint,priority:2" json:"-"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Merchant == "" {
		t.Merchant = NormalizeMerchant(t.Description)
	}
	t.Currency = strings.ToUpper(strings.TrimSpace(t.Currency))
	t.Date = DateOnly(t.Date)

	now := time.Now()
	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrMissingUserID
	}

	if t.Date.IsZero() {
		return ErrMissingDate
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrMissingDescription
	}

	if len(t.Description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}

	if !IsValidDirection(t.Direction) {
		return ErrInvalidDirection
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !IsValidCurrency(t.Currency) {
		return ErrInvalidCurrency
	}

	if len(t.SourceRef) > maxSourceRefLength {
		return ErrSourceRefTooLong
	}

	if t.Fingerprint == "" {
		return ErrMissingFingerprint
	}

	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsExpense returns true for money leaving the account
func (t *Transaction) IsExpense() bool {
	return t.Direction == DirectionExpense
}

// IsIncome returns true for money entering the account
func (t *Transaction) IsIncome() bool {
	return t.Direction == DirectionIncome
}

// SignedAmount returns the amount with expenses negated
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// CategoryName returns the preloaded category name, or empty when uncategorized
func (t *Transaction) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return t.Category.Name
}

// IsValidDirection checks if the direction is valid
func IsValidDirection(direction string) bool {
	switch direction {
	case DirectionIncome, DirectionExpense:
		return true
	default:
		return false
	}
}

// IsValidCurrency accepts any ISO-4217 shaped code; no conversion table is kept.
func IsValidCurrency(currency string) bool {
	if len(currency) != 3 {
		return false
	}
	for i := 0; i < len(currency); i++ {
		c := currency[i]
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
