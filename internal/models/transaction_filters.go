package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Direction  string
	CategoryID *uuid.UUID
	Merchant   string
	Currency   string
	Offset     int
	Limit      int
}
