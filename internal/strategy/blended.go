package strategy

import "math"

// BlendedStrategy splits the surplus after mandatory amortization between
// extra principal and investment by a fixed fraction. PrincipalShare 1.0
// behaves like MortgageFocusStrategy, 0.0 like InvestmentFocusStrategy.
//
// If the principal share would overpay the mortgage, the excess spills
// over into the investment leg.
type BlendedStrategy struct {
	// PrincipalShare is the fraction of surplus cash sent to extra
	// principal, in [0,1].
	PrincipalShare float64
}

func (BlendedStrategy) Name() string { return "blended" }

func (s BlendedStrategy) Allocate(ctx Context) Allocation {
	mandatory := mandatoryPayment(ctx)
	surplus := ctx.AvailableCash - mandatory
	if surplus <= 0 {
		return Allocation{MandatoryAmortization: mandatory}
	}

	share := s.PrincipalShare
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}

	extra := math.Min(surplus*share, ctx.MortgageBalance-mandatory)
	if extra < 0 {
		extra = 0
	}
	return Allocation{
		MandatoryAmortization: mandatory,
		ExtraPrincipal:        extra,
		Investment:            surplus - extra,
	}
}
