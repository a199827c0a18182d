package strategy

import "math"

// MortgageFocusStrategy pays the mandatory amortization and then sends all
// remaining cash to extra principal, never investing. Extra principal is
// capped at the remaining balance; surplus cash past payoff stays in the
// account.
type MortgageFocusStrategy struct{}

func (MortgageFocusStrategy) Name() string { return "mortgage_focus" }

func (MortgageFocusStrategy) Allocate(ctx Context) Allocation {
	mandatory := mandatoryPayment(ctx)
	surplus := ctx.AvailableCash - mandatory
	if surplus <= 0 {
		return Allocation{MandatoryAmortization: mandatory}
	}
	extra := math.Min(surplus, ctx.MortgageBalance-mandatory)
	if extra < 0 {
		extra = 0
	}
	return Allocation{
		MandatoryAmortization: mandatory,
		ExtraPrincipal:        extra,
	}
}

// InvestmentFocusStrategy pays only the mandatory amortization and invests
// every remaining krona in the growth asset.
type InvestmentFocusStrategy struct{}

func (InvestmentFocusStrategy) Name() string { return "investment_focus" }

func (InvestmentFocusStrategy) Allocate(ctx Context) Allocation {
	mandatory := mandatoryPayment(ctx)
	surplus := ctx.AvailableCash - mandatory
	if surplus <= 0 {
		return Allocation{MandatoryAmortization: mandatory}
	}
	return Allocation{
		MandatoryAmortization: mandatory,
		Investment:            surplus,
	}
}
