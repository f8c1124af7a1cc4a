package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidMonth     = errors.New("month must be between 1 and 12")
	ErrInvalidYear      = errors.New("year is out of range")
	ErrInvalidDateRange = errors.New("start date must be before end date")
)

// DateRange is a half-open calendar interval [Start, End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range from two dates, truncated to calendar days
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: DateOnly(start), End: DateOnly(end)}
	if !r.Start.Before(r.End) {
		return DateRange{}, ErrInvalidDateRange
	}
	return r, nil
}

// MonthRange returns the range covering the given calendar month
func MonthRange(month, year int) (DateRange, error) {
	if err := ValidateMonth(month, year); err != nil {
		return DateRange{}, err
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 1, 0)}, nil
}

// Contains reports whether t falls inside the range
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// String formats the range for logs
func (r DateRange) String() string {
	return fmt.Sprintf("%s to %s", r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
}

// ValidateMonth checks month/year parameters coming from callers
func ValidateMonth(month, year int) error {
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	if year < 1900 || year > 9999 {
		return ErrInvalidYear
	}
	return nil
}

// PreviousMonth returns the calendar month before month/year, rolling over January.
func PreviousMonth(month, year int) (int, int) {
	if month == 1 {
		return 12, year - 1
	}
	return month - 1, year
}

// MonthsBefore returns the first day of the month n months before month/year
func MonthsBefore(month, year, n int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -n, 0)
}

// MonthLabel formats month/year as YYYY-MM
func MonthLabel(month, year int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
