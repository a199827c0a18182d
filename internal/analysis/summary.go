package analysis

import (
	"math"
	"sort"
)

// Summary aggregates one terminal metric across Monte Carlo paths.
type Summary struct {
	Count int

	Mean   float64
	StdDev float64

	Min float64
	Max float64

	// P05 is the 5th percentile, the usual Value-at-Risk cut.
	P05 float64
	P50 float64
	P95 float64
}

// Summarize computes summary statistics over a metric slice. The input is
// not modified.
func Summarize(values []float64) Summary {
	s := Summary{Count: len(values)}
	if len(values) == 0 {
		return s
	}

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	for _, v := range values {
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	s.Mean = sum / float64(len(values))
	s.Min = minv
	s.Max = maxv

	varSum := 0.0
	for _, v := range values {
		d := v - s.Mean
		varSum += d * d
	}
	if len(values) > 1 {
		s.StdDev = math.Sqrt(varSum / float64(len(values)-1))
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	s.P05 = percentileSorted(sorted, 0.05)
	s.P50 = percentileSorted(sorted, 0.50)
	s.P95 = percentileSorted(sorted, 0.95)

	return s
}

// Percentile returns the q-th quantile (q in [0,1]) of values without
// modifying the input.
func Percentile(values []float64, q float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return percentileSorted(sorted, q)
}

// FractionBelow is the fraction of values strictly below threshold, e.g.
// the probability of negative terminal equity with threshold 0.
func FractionBelow(values []float64, threshold float64) float64 {
	if len(values) == 0 {
		return 0
	}
	n := 0
	for _, v := range values {
		if v < threshold {
			n++
		}
	}
	return float64(n) / float64(len(values))
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
