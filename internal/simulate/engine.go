package simulate

import (
	"errors"
	"fmt"
	"math"

	"github.com/Lejoon/mortage-repayment/internal/model"
	"github.com/Lejoon/mortage-repayment/internal/strategy"
)

// Scenario is the full immutable configuration for one simulated path.
// The same scenario is shared read-only across all Monte Carlo paths.
type Scenario struct {
	InitialMortgage float64
	MonthlyInflow   float64
	InitialCash     float64
	InflationRate   float64

	Rates  model.ShortRateParams
	Growth model.GrowthAssetParams

	// Periods is the horizon in months.
	Periods int
}

func (s Scenario) Validate() error {
	if s.Periods <= 0 {
		return errors.New("Periods must be > 0")
	}
	if err := s.ledgerParams().Validate(); err != nil {
		return err
	}
	if err := s.Rates.Validate(); err != nil {
		return fmt.Errorf("short-rate params: %w", err)
	}
	if err := s.Growth.Validate(); err != nil {
		return fmt.Errorf("growth params: %w", err)
	}
	return nil
}

func (s Scenario) ledgerParams() LedgerParams {
	return LedgerParams{
		InitialMortgage: s.InitialMortgage,
		MonthlyInflow:   s.MonthlyInflow,
		InitialCash:     s.InitialCash,
		InflationRate:   s.InflationRate,
	}
}

// PathResult holds the terminal metrics of one simulated path plus its
// full per-month history. Immutable once returned; owned by the caller.
type PathResult struct {
	Records []CashFlowRecord

	FinalMortgage     float64
	CumulativePaydown float64
	FinalInvestment   float64
	FinalEquity       float64
	TotalInflow       float64

	// NetFinalMortgage is the balance left if the portfolio were
	// liquidated into principal at the horizon:
	// max(0, FinalMortgage - FinalInvestment). It puts paydown-heavy and
	// investment-heavy strategies on the same footing.
	NetFinalMortgage float64
}

// Engine drives a single ledger through a scenario horizon.
type Engine struct{}

func New() *Engine { return &Engine{} }

// RunPath simulates one path: fresh models fed by src, one ledger, Periods
// months. Any ledger failure aborts the whole path.
func (e *Engine) RunPath(sc Scenario, strat strategy.Strategy, src model.NormalSource) (*PathResult, error) {
	if strat == nil {
		return nil, errors.New("strategy is nil")
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	rates, err := model.NewShortRateModel(sc.Rates, src)
	if err != nil {
		return nil, err
	}
	growth, err := model.NewGrowthAssetModel(sc.Growth, src)
	if err != nil {
		return nil, err
	}
	ledger, err := NewLedger(sc.ledgerParams(), rates, growth)
	if err != nil {
		return nil, err
	}

	for p := 0; p < sc.Periods; p++ {
		if _, err := ledger.AdvancePeriod(strat); err != nil {
			return nil, fmt.Errorf("period %d advance: %w", p, err)
		}
	}

	res := &PathResult{
		Records:         ledger.History,
		FinalMortgage:   ledger.Liabilities[LiabilityMortgage],
		FinalInvestment: ledger.Assets[AssetInvestment],
		FinalEquity:     ledger.TotalEquity(),
	}
	res.NetFinalMortgage = math.Max(0, res.FinalMortgage-res.FinalInvestment)
	for _, rec := range ledger.History {
		res.CumulativePaydown += rec.MandatoryAmortization + rec.ExtraPrincipal
		res.TotalInflow += rec.Inflow
	}
	return res, nil
}
