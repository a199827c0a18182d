package simulate

import (
	"errors"
	"fmt"
	"math"

	"github.com/Lejoon/mortage-repayment/internal/model"
	"github.com/Lejoon/mortage-repayment/internal/strategy"
)

// deltaT is the monthly time step in years.
const deltaT = 1.0 / 12

// balanceTolerance is the absolute tolerance for the balance-sheet
// identity check after each period.
const balanceTolerance = 1e-6

// Balance-sheet line items.
const (
	AssetCash       = "cash"
	AssetInvestment = "investment_portfolio"
	AssetResidency  = "residency"

	LiabilityMortgage = "mortgage"

	EquityInitialContribution = "initial_contribution"
	EquityRetainedEarnings    = "retained_earnings"
)

// CashFlowRecord is one row of per-month output, appended to the ledger
// history in period order and immutable once appended.
type CashFlowRecord struct {
	Period int

	Inflow                float64
	InterestPayment       float64 // signed: always <= 0
	MandatoryAmortization float64 // negative in a shortfall month
	ExtraPrincipal        float64
	Investment            float64
	InvestmentReturn      float64

	AnnualRate     float64 // rate the interest accrued at this period
	PNL            float64
	NextAnnualRate float64 // rate prevailing next period
}

// LedgerParams configures one cash-flow ledger.
type LedgerParams struct {
	InitialMortgage float64
	MonthlyInflow   float64
	InitialCash     float64

	// InflationRate, when non-zero, scales the monthly inflow by
	// (1 + InflationRate/12)^period.
	InflationRate float64
}

func (p LedgerParams) Validate() error {
	if p.InitialMortgage <= 0 {
		return errors.New("InitialMortgage must be > 0")
	}
	if p.MonthlyInflow < 0 {
		return errors.New("MonthlyInflow must be >= 0")
	}
	if p.InitialCash < 0 {
		return errors.New("InitialCash must be >= 0")
	}
	return nil
}

// Ledger is the monthly accounting state machine. It owns a balance sheet
// and advances it one month at a time, delegating the cash split to an
// allocation strategy. The balance-sheet identity
// sum(assets) == sum(liabilities) + sum(equity) holds after every period.
//
// The residency asset is carried at the initial mortgage amount for the
// lifetime of the ledger; it is never marked to market.
type Ledger struct {
	Params LedgerParams

	Assets      map[string]float64
	Liabilities map[string]float64
	Equity      map[string]float64

	Period  int
	History []CashFlowRecord

	rates  *model.ShortRateModel
	growth *model.GrowthAssetModel
}

func NewLedger(params LedgerParams, rates *model.ShortRateModel, growth *model.GrowthAssetModel) (*Ledger, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rates == nil {
		return nil, errors.New("short-rate model is nil")
	}
	if growth == nil {
		return nil, errors.New("growth-asset model is nil")
	}
	return &Ledger{
		Params: params,
		Assets: map[string]float64{
			AssetCash:       params.InitialCash,
			AssetInvestment: 0,
			AssetResidency:  params.InitialMortgage,
		},
		Liabilities: map[string]float64{
			LiabilityMortgage: params.InitialMortgage,
		},
		Equity: map[string]float64{
			EquityInitialContribution: params.InitialCash,
			EquityRetainedEarnings:    0,
		},
		rates:  rates,
		growth: growth,
	}, nil
}

func (l *Ledger) TotalAssets() float64      { return sumValues(l.Assets) }
func (l *Ledger) TotalLiabilities() float64 { return sumValues(l.Liabilities) }
func (l *Ledger) TotalEquity() float64      { return sumValues(l.Equity) }

// inflow is the exogenous cash credited this period, inflation-adjusted
// when configured.
func (l *Ledger) inflow() float64 {
	base := l.Params.MonthlyInflow
	if l.Params.InflationRate == 0 {
		return base
	}
	return base * math.Pow(1+l.Params.InflationRate/12, float64(l.Period))
}

// AdvancePeriod applies one month as a single atomic transition:
// credit the inflow, accrue interest on the entry mortgage balance, apply
// the strategy's allocation (principal reduction and investment
// contribution), grow the investment account, book the period P&L into
// retained earnings, draw next period's rate, and append the record.
//
// A month where interest exceeds the cash on hand is a normal business
// condition: the strategy returns the deficit as a negative mandatory
// payment, the mortgage balance grows by the unpaid amount and cash
// returns to zero.
//
// A balance-sheet identity failure is a logic defect, never a business
// condition: the error carries the full balance sheet and aborts the path.
func (l *Ledger) AdvancePeriod(strat strategy.Strategy) (CashFlowRecord, error) {
	if strat == nil {
		return CashFlowRecord{}, errors.New("strategy is nil")
	}

	rate := l.rates.Rate()
	pnl := 0.0

	// 1. Exogenous cash inflow (income).
	inflow := l.inflow()
	l.Assets[AssetCash] += inflow
	pnl += inflow

	// 2. Interest on the month's entry mortgage balance (expense).
	interest := l.Liabilities[LiabilityMortgage] * rate / 12
	l.Assets[AssetCash] -= interest
	pnl -= interest

	// 3. Strategy decides how to split what is left.
	alloc := strat.Allocate(strategy.Context{
		Period:          l.Period,
		AvailableCash:   l.Assets[AssetCash],
		MortgageBalance: l.Liabilities[LiabilityMortgage],
		AnnualRate:      rate,
		InvestmentValue: l.Assets[AssetInvestment],
	})
	if err := l.checkAllocation(alloc); err != nil {
		return CashFlowRecord{}, fmt.Errorf("period %d: %w", l.Period, err)
	}

	// 4. Principal reduction: a balance-sheet transfer, not P&L.
	principal := alloc.MandatoryAmortization + alloc.ExtraPrincipal
	l.Liabilities[LiabilityMortgage] -= principal
	l.Assets[AssetCash] -= principal

	// 5. Investment contribution leaves cash.
	l.Assets[AssetCash] -= alloc.Investment

	// 6. Grow the investment account; the return is unrealized, so it
	// flows into P&L but not into cash.
	prev := l.Assets[AssetInvestment]
	next := l.growth.Advance(deltaT, alloc.Investment)
	investmentReturn := next - prev - alloc.Investment
	l.Assets[AssetInvestment] = next
	pnl += investmentReturn

	// 7. Book the period P&L.
	l.Equity[EquityRetainedEarnings] += pnl

	// 8. Next period's rate.
	nextRate := l.rates.Advance(deltaT)

	rec := CashFlowRecord{
		Period:                l.Period,
		Inflow:                inflow,
		InterestPayment:       -interest,
		MandatoryAmortization: alloc.MandatoryAmortization,
		ExtraPrincipal:        alloc.ExtraPrincipal,
		Investment:            alloc.Investment,
		InvestmentReturn:      investmentReturn,
		AnnualRate:            rate,
		PNL:                   pnl,
		NextAnnualRate:        nextRate,
	}

	// 9. Append, verify the identity, advance the clock.
	l.History = append(l.History, rec)
	if err := l.checkBalanceSheet(); err != nil {
		return CashFlowRecord{}, err
	}
	l.Period++

	return rec, nil
}

// checkAllocation enforces the strategy contract before any mutation. A
// negative mandatory payment is the shortfall case: it must hand exactly
// the cash position to the mortgage and allocate nothing else.
func (l *Ledger) checkAllocation(a strategy.Allocation) error {
	if a.ExtraPrincipal < 0 || a.Investment < 0 {
		return fmt.Errorf("strategy returned a negative allocation: %+v", a)
	}
	cash := l.Assets[AssetCash]
	if a.MandatoryAmortization < 0 {
		if a.ExtraPrincipal != 0 || a.Investment != 0 || math.Abs(a.MandatoryAmortization-cash) > balanceTolerance {
			return fmt.Errorf("strategy returned inconsistent shortfall allocation %+v with %.6f available", a, cash)
		}
		return nil
	}
	if a.Total() > cash+balanceTolerance {
		return fmt.Errorf("strategy allocated %.6f with only %.6f available", a.Total(), cash)
	}
	return nil
}

func (l *Ledger) checkBalanceSheet() error {
	assets := l.TotalAssets()
	liabilities := l.TotalLiabilities()
	equity := l.TotalEquity()
	if math.Abs(assets-(liabilities+equity)) < balanceTolerance {
		return nil
	}
	return fmt.Errorf(
		"period %d: balance sheet does not balance: assets (%.6f) != liabilities (%.6f) + equity (%.6f)\nassets=%v\nliabilities=%v\nequity=%v",
		l.Period, assets, liabilities, equity, l.Assets, l.Liabilities, l.Equity,
	)
}

func sumValues(m map[string]float64) float64 {
	total := 0.0
	for _, v := range m {
		total += v
	}
	return total
}
