package analysis

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	values := []float64{5, 1, 4, 2, 3}
	s := Summarize(values)

	if s.Count != 5 {
		t.Errorf("count = %d, want 5", s.Count)
	}
	if s.Mean != 3 {
		t.Errorf("mean = %v, want 3", s.Mean)
	}
	if want := math.Sqrt(2.5); math.Abs(s.StdDev-want) > 1e-12 {
		t.Errorf("stddev = %v, want %v", s.StdDev, want)
	}
	if s.Min != 1 || s.Max != 5 {
		t.Errorf("min/max = %v/%v, want 1/5", s.Min, s.Max)
	}
	if s.P50 != 3 {
		t.Errorf("p50 = %v, want 3", s.P50)
	}

	// Input order must survive summarization.
	if values[0] != 5 || values[4] != 3 {
		t.Error("Summarize mutated its input")
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 || s.Mean != 0 || s.StdDev != 0 {
		t.Errorf("empty summary not zero: %+v", s)
	}
}

func TestPercentile_Interpolates(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}

	cases := []struct {
		q    float64
		want float64
	}{
		{0, 10},
		{1, 50},
		{-0.5, 10},
		{1.5, 50},
		{0.5, 30},
		{0.25, 20},
		{0.125, 15}, // between order stats
	}
	for _, tc := range cases {
		if got := Percentile(values, tc.q); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Percentile(q=%v) = %v, want %v", tc.q, got, tc.want)
		}
	}
}

func TestFractionBelow(t *testing.T) {
	values := []float64{-2, -1, 0, 1, 2}

	if got := FractionBelow(values, 0); got != 0.4 {
		t.Errorf("FractionBelow(0) = %v, want 0.4 (strictly below)", got)
	}
	if got := FractionBelow(values, 100); got != 1 {
		t.Errorf("FractionBelow(100) = %v, want 1", got)
	}
	if got := FractionBelow(values, -100); got != 0 {
		t.Errorf("FractionBelow(-100) = %v, want 0", got)
	}
	if got := FractionBelow(nil, 0); got != 0 {
		t.Errorf("FractionBelow(nil) = %v, want 0", got)
	}
}
