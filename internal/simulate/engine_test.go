package simulate

import (
	"math"
	"testing"

	"github.com/Lejoon/mortage-repayment/internal/model"
	"github.com/Lejoon/mortage-repayment/internal/strategy"
)

// zeroNoiseScenario has no stochastic component: zero rate, zero vol.
func zeroNoiseScenario(mortgage, monthly float64, months int) Scenario {
	return Scenario{
		InitialMortgage: mortgage,
		MonthlyInflow:   monthly,
		Rates: model.ShortRateParams{
			InitialRate:      0,
			MeanRate:         0,
			SpeedOfReversion: 0.1,
			Volatility:       0,
		},
		Growth:  model.GrowthAssetParams{ExpectedReturn: 0, Volatility: 0},
		Periods: months,
	}
}

func TestRunPath_DeterministicPaydown(t *testing.T) {
	// Under mortgage focus with zero volatility and zero rate, the
	// balance after N months is exactly max(0, M0 - N*monthlyCash).
	cases := []struct {
		mortgage float64
		monthly  float64
		months   int
	}{
		{100_000, 17_000, 5},  // mid-paydown
		{100_000, 17_000, 6},  // crosses zero mid-month
		{100_000, 17_000, 12}, // long paid off
		{4_100_000, 17_000, 60},
	}

	engine := New()
	for _, tc := range cases {
		sc := zeroNoiseScenario(tc.mortgage, tc.monthly, tc.months)
		res, err := engine.RunPath(sc, strategy.MortgageFocusStrategy{}, model.NewSeededSource(1))
		if err != nil {
			t.Fatal(err)
		}

		want := math.Max(0, tc.mortgage-float64(tc.months)*tc.monthly)
		if math.Abs(res.FinalMortgage-want) > 1e-6 {
			t.Errorf("M0=%v N=%d: final mortgage = %v, want %v", tc.mortgage, tc.months, res.FinalMortgage, want)
		}

		// Nothing is invested under mortgage focus, so liquidating the
		// portfolio changes nothing.
		if math.Abs(res.NetFinalMortgage-want) > 1e-6 {
			t.Errorf("M0=%v N=%d: net mortgage = %v, want %v", tc.mortgage, tc.months, res.NetFinalMortgage, want)
		}

		wantPaydown := math.Min(tc.mortgage, float64(tc.months)*tc.monthly)
		if math.Abs(res.CumulativePaydown-wantPaydown) > 1e-6 {
			t.Errorf("M0=%v N=%d: paydown = %v, want %v", tc.mortgage, tc.months, res.CumulativePaydown, wantPaydown)
		}

		if math.Abs(res.TotalInflow-float64(tc.months)*tc.monthly) > 1e-6 {
			t.Errorf("total inflow = %v, want %v", res.TotalInflow, float64(tc.months)*tc.monthly)
		}
		if len(res.Records) != tc.months {
			t.Errorf("history length = %d, want %d", len(res.Records), tc.months)
		}
	}
}

func TestRunPath_EquityEqualsRetainedPlusContribution(t *testing.T) {
	// With no noise and no growth, terminal equity under investment focus
	// equals cumulative inflow (nothing is lost, nothing is earned).
	sc := zeroNoiseScenario(1_000_000, 10_000, 24)
	res, err := New().RunPath(sc, strategy.InvestmentFocusStrategy{}, model.NewSeededSource(1))
	if err != nil {
		t.Fatal(err)
	}
	want := 24 * 10_000.0
	if math.Abs(res.FinalEquity-want) > 1e-6 {
		t.Errorf("final equity = %v, want %v", res.FinalEquity, want)
	}
}

func TestRunPath_Validation(t *testing.T) {
	engine := New()
	src := model.NewSeededSource(1)

	if _, err := engine.RunPath(zeroNoiseScenario(1000, 100, 12), nil, src); err == nil {
		t.Error("nil strategy: expected error")
	}

	bad := zeroNoiseScenario(1000, 100, 12)
	bad.Periods = 0
	if _, err := engine.RunPath(bad, strategy.MortgageFocusStrategy{}, src); err == nil {
		t.Error("zero periods: expected error")
	}

	bad = zeroNoiseScenario(1000, 100, 12)
	bad.Rates.SpeedOfReversion = 0
	if _, err := engine.RunPath(bad, strategy.MortgageFocusStrategy{}, src); err == nil {
		t.Error("zero speed of reversion: expected error")
	}
}
