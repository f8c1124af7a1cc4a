package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMerchant(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Netflix", "NETFLIX"},
		{"whitespace", "  netflix   com  ", "NETFLIX COM"},
		{"numeric reference suffix", "NETFLIX.COM 12345678", "NETFLIX.COM"},
		{"star reference", "NETFLIX.COM*AB12C", "NETFLIX.COM"},
		{"star without digits kept", "AMAZON*PRIME", "AMAZON*PRIME"},
		{"hash reference", "Migros #4821 Istanbul", "MIGROS ISTANBUL"},
		{"ref marker", "SPOTIFY REF 99812", "SPOTIFY"},
		{"ref prefixed token", "SPOTIFY REF:AB99812", "SPOTIFY"},
		{"pos prefix", "POS STARBUCKS 0042 15.03", "STARBUCKS"},
		{"card purchase prefix", "Debit Card Purchase - Shell 5542", "SHELL"},
		{"first word always kept", "7500123 TRANSFER", "7500123 TRANSFER"},
		{"trailing punctuation", "YEMEKSEPETI -", "YEMEKSEPETI"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMerchant(tt.input))
		})
	}
}

func TestNormalizeMerchant_GroupsVariants(t *testing.T) {
	a := NormalizeMerchant("NETFLIX.COM 2024-01-15")
	b := NormalizeMerchant("netflix.com   #99812")
	c := NormalizeMerchant("Netflix.com")

	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}

func TestNormalizeDescription(t *testing.T) {
	assert.Equal(t, "Coffee Shop Kadikoy", NormalizeDescription("  Coffee   Shop\tKadikoy "))
	assert.Equal(t, "", NormalizeDescription(""))
}
