package analysis

import (
	"math"

	"github.com/katalvlaran/ecolysis/population"
)

// GrowthRatios returns N(t+1)/N(t) for every step of s, where N(0) is the
// total of initial. A step whose predecessor total is 0 yields NaN.
// The result has s.Len() entries.
func GrowthRatios(initial population.StageVector, s population.Series) []float64 {
	out := make([]float64, s.Len())
	prev := initial.Total()
	for k, total := range s.Totals() {
		if prev == 0 {
			out[k] = math.NaN()
		} else {
			out[k] = total / prev
		}
		prev = total
	}

	return out
}

// Summary condenses a run into a handful of totals.
type Summary struct {
	Steps        int     `json:"steps"`
	InitialTotal float64 `json:"initial_total"`
	FinalTotal   float64 `json:"final_total"`
	MinTotal     float64 `json:"min_total"`
	MaxTotal     float64 `json:"max_total"`
	// Change is FinalTotal/InitialTotal; NaN when InitialTotal is 0.
	Change float64 `json:"change"`
}

// Summarize reports the totals of initial and of every step in s.
// For an empty series FinalTotal equals InitialTotal.
func Summarize(initial population.StageVector, s population.Series) Summary {
	first := initial.Total()
	sum := Summary{
		Steps:        s.Len(),
		InitialTotal: first,
		FinalTotal:   first,
		MinTotal:     first,
		MaxTotal:     first,
	}
	for _, total := range s.Totals() {
		sum.MinTotal = math.Min(sum.MinTotal, total)
		sum.MaxTotal = math.Max(sum.MaxTotal, total)
		sum.FinalTotal = total
	}
	if first == 0 {
		sum.Change = math.NaN()
	} else {
		sum.Change = sum.FinalTotal / first
	}

	return sum
}
