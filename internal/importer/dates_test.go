package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fre-insights/internal/models"
)

func TestParseDate_SupportedFormatsAgree(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		format string
		value  string
	}{
		{models.DateFormatISO, "2024-03-15"},
		{models.DateFormatDMY, "15.03.2024"},
		{models.DateFormatMDY, "03/15/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := ParseDate(tt.value, tt.format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseDate_Leniency(t *testing.T) {
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		format string
		value  string
	}{
		{"single digits mdy", models.DateFormatMDY, "3/5/2024"},
		{"single digits dmy", models.DateFormatDMY, "5.3.2024"},
		{"surrounding space", models.DateFormatISO, "  2024-03-05 "},
		{"time suffix", models.DateFormatISO, "2024-03-05 14:22:01"},
		{"rfc3339", models.DateFormatISO, "2024-03-05T14:22:01Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value, tt.format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseDate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		value   string
		wantErr error
	}{
		{"unknown format", "yyyy/mm/dd", "2024/03/15", ErrUnsupportedDateFormat},
		{"empty", models.DateFormatISO, "", ErrInvalidDate},
		{"wrong format", models.DateFormatISO, "15.03.2024", ErrInvalidDate},
		{"month out of range", models.DateFormatMDY, "13/15/2024", ErrInvalidDate},
		{"day out of range", models.DateFormatDMY, "31.02.2024", ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.value, tt.format)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsSupportedDateFormat(t *testing.T) {
	for _, f := range SupportedDateFormats() {
		assert.True(t, IsSupportedDateFormat(f))
	}
	assert.False(t, IsSupportedDateFormat("dd/mm/yyyy"))
}
