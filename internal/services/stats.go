package services

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

func toFloats(amounts []decimal.Decimal) []float64 {
	values := make([]float64, len(amounts))
	for i, a := range amounts {
		values[i], _ = a.Float64()
	}
	return values
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationStdDev divides by n, not n-1
func populationStdDev(values []float64, mu float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sq float64
	for _, v := range values {
		d := v - mu
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}

// coefficientOfVariation returns σ/μ, or 0 when μ is 0
func coefficientOfVariation(values []float64) float64 {
	mu := mean(values)
	if mu == 0 {
		return 0
	}
	return populationStdDev(values, mu) / math.Abs(mu)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
