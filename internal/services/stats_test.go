package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, median(nil))
	assert.Equal(t, 3.0, median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, median([]float64{4, 1, 3, 2}))

	values := []float64{3, 1, 2}
	median(values)
	assert.Equal(t, []float64{3, 1, 2}, values, "input must not be reordered")
}

func TestMeanAndStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	mu := mean(values)
	assert.Equal(t, 5.0, mu)
	assert.Equal(t, 2.0, populationStdDev(values, mu))
	assert.Equal(t, 0.0, populationStdDev(nil, 0))
}

func TestCoefficientOfVariation(t *testing.T) {
	assert.Equal(t, 0.0, coefficientOfVariation([]float64{10, 10, 10}))
	assert.InDelta(t, 0.4, coefficientOfVariation([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
	assert.Equal(t, 0.0, coefficientOfVariation([]float64{0, 0}))
}

func TestToFloats(t *testing.T) {
	got := toFloats([]decimal.Decimal{decimal.RequireFromString("99.90"), decimal.NewFromInt(-5)})
	assert.Equal(t, []float64{99.9, -5}, got)
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 140.0, roundTo(139.996, 1))
	assert.Equal(t, 33.33, roundTo(33.3333, 2))
}
