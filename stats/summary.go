// Package stats aggregates and prints simulation results.
package stats

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"
)

// Number is any value that can be summarized.
type Number interface {
	constraints.Integer | constraints.Float
}

// Summary describes a sample.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes the summary of xs. The standard deviation of fewer
// than two values is zero.
func Summarize[T Number](xs []T) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	fs := Floats(xs)
	mean, std := stat.MeanStdDev(fs, nil)
	if len(fs) < 2 || math.IsNaN(std) {
		std = 0
	}
	return Summary{
		N:      len(fs),
		Mean:   mean,
		StdDev: std,
		Min:    slices.Min(fs),
		Max:    slices.Max(fs),
	}
}

// Floats converts xs to float64.
func Floats[T Number](xs []T) []float64 {
	ret := make([]float64, len(xs))
	for i, x := range xs {
		ret[i] = float64(x)
	}
	return ret
}

// Ratio returns num/den, or zero when den is zero.
func Ratio[T, U Number](num T, den U) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
