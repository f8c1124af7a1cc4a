package importer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fre-insights/internal/models"
)

var (
	ErrUnsupportedDateFormat = errors.New("unsupported date format")
	ErrInvalidDate           = errors.New("invalid date")
)

// Single-digit day and month are accepted ("3/5/2024").
var dateLayouts = map[string]string{
	models.DateFormatISO: "2006-1-2",
	models.DateFormatDMY: "2.1.2006",
	models.DateFormatMDY: "1/2/2006",
}

// IsSupportedDateFormat reports whether format is one of the known date format keys
func IsSupportedDateFormat(format string) bool {
	_, ok := dateLayouts[format]
	return ok
}

// SupportedDateFormats lists the accepted date format keys
func SupportedDateFormats() []string {
	return []string{models.DateFormatISO, models.DateFormatDMY, models.DateFormatMDY}
}

// ParseDate parses a date cell in the declared format and returns midnight UTC of that day.
// A time-of-day suffix after the date ("2024-03-15 10:22", "2024-03-15T10:22:00Z") is ignored.
func ParseDate(value, format string) (time.Time, error) {
	layout, ok := dateLayouts[format]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnsupportedDateFormat, format)
	}

	value = strings.TrimSpace(value)
	if idx := strings.IndexAny(value, " T"); idx > 0 {
		value = value[:idx]
	}
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match %s", ErrInvalidDate, value, format)
	}
	return models.DateOnly(t), nil
}
