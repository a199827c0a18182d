package strategy

// MandatoryAmortizationRate is the minimum principal paydown policy:
// 1% of the outstanding balance per year, charged monthly.
const MandatoryAmortizationRate = 0.01 / 12

// Context is the ledger state visible to a strategy when it allocates one
// month's cash. AvailableCash is what remains after the interest payment.
type Context struct {
	Period          int
	AvailableCash   float64
	MortgageBalance float64
	AnnualRate      float64
	InvestmentValue float64
}

// Allocation is a strategy's decision for one month. ExtraPrincipal and
// Investment are non-negative, the sum never exceeds AvailableCash, and
// principal payments never exceed the outstanding mortgage balance.
//
// MandatoryAmortization is negative in a shortfall month (interest larger
// than the cash on hand): the whole cash deficit flows to the mortgage,
// which grows by the unpaid amount, and cash returns to zero.
type Allocation struct {
	MandatoryAmortization float64
	ExtraPrincipal        float64
	Investment            float64
}

// Total is the cash leaving the account this month.
func (a Allocation) Total() float64 {
	return a.MandatoryAmortization + a.ExtraPrincipal + a.Investment
}

// Strategy decides how to split available cash between mortgage paydown
// and investment each month. Implementations must be pure: no mutation of
// the ledger, safe to share across concurrent paths.
type Strategy interface {
	Name() string
	Allocate(ctx Context) Allocation
}

// mandatoryPayment computes the month's minimum amortization, clamped to
// the cash on hand. When cash falls short of the scheduled payment the
// whole position flows through, even if negative, so the mortgage absorbs
// the shortfall instead of cash staying below zero.
func mandatoryPayment(ctx Context) float64 {
	if ctx.MortgageBalance <= 0 {
		return 0
	}
	m := ctx.MortgageBalance * MandatoryAmortizationRate
	if ctx.AvailableCash < m {
		return ctx.AvailableCash
	}
	return m
}
