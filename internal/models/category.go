package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Default category names assigned by the categorizer
const (
	CategoryGroceries      = "Groceries"
	CategoryDining         = "Dining"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryShopping       = "Shopping"
	CategoryBillsUtilities = "Bills & Utilities"
	CategoryRent           = "Rent"
	CategoryHealthcare     = "Healthcare"
	CategoryEducation      = "Education"
	CategoryTravel         = "Travel"
	CategoryCash           = "Cash"
	CategoryIncome         = "Income"
	CategoryFees           = "Fees"
	CategoryOther          = "Other"

	// CategoryUncategorized groups expenses without a category in aggregates
	CategoryUncategorized = "Uncategorized"
)

// Categorization method types
const (
	CategorizationMethodMerchant    = "MERCHANT"
	CategorizationMethodDescription = "DESCRIPTION"
	CategorizationMethodFuzzy       = "FUZZY"
	CategorizationMethodFallback    = "FALLBACK"
)

const maxCategoryNameLength = 50

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategoryNameTooLong  = errors.New("category name too long")
)

// Category is a user-scoped transaction category
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name,priority:1" json:"user_id"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_categories_user_name,priority:2" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.Name = strings.TrimSpace(c.Name)

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameRequired
	}
	if len(c.Name) > maxCategoryNameLength {
		return ErrCategoryNameTooLong
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// DefaultCategories returns the category names the categorizer can assign
func DefaultCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryDining,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryShopping,
		CategoryBillsUtilities,
		CategoryRent,
		CategoryHealthcare,
		CategoryEducation,
		CategoryTravel,
		CategoryCash,
		CategoryIncome,
		CategoryFees,
		CategoryOther,
	}
}

// IsDefaultCategory checks if a name is one of the default categories
func IsDefaultCategory(name string) bool {
	for _, category := range DefaultCategories() {
		if strings.EqualFold(name, category) {
			return true
		}
	}
	return false
}

// CategorizationResult contains the result of transaction categorization
type CategorizationResult struct {
	Category       string  `json:"category"`
	Method         string  `json:"method"`
	Confidence     float64 `json:"confidence"`
	MatchedPattern string  `json:"matched_pattern,omitempty"`
}
