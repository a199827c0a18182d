package model

import (
	"errors"
	"math"
)

// ShortRateParams defines a mean-reverting (Vasicek) short-rate process.
// Rates are annual fractions (0.03 = 3%).
type ShortRateParams struct {
	InitialRate      float64
	MeanRate         float64
	SpeedOfReversion float64 // 'a' parameter, must be > 0
	Volatility       float64 // 'sigma' parameter, annualized
}

// ShortRateModel simulates one short-rate path. Constructed once per path,
// mutated in place every step.
type ShortRateModel struct {
	Params ShortRateParams

	rate float64
	src  NormalSource
}

func NewShortRateModel(params ShortRateParams, src NormalSource) (*ShortRateModel, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("normal source is nil")
	}
	return &ShortRateModel{
		Params: params,
		rate:   params.InitialRate,
		src:    src,
	}, nil
}

func (p ShortRateParams) Validate() error {
	// a == 0 would divide by zero in the variance term.
	if p.SpeedOfReversion <= 0 {
		return errors.New("SpeedOfReversion must be > 0")
	}
	if p.Volatility < 0 {
		return errors.New("Volatility must be >= 0")
	}
	if p.InitialRate < 0 {
		return errors.New("InitialRate must be >= 0")
	}
	return nil
}

// Rate returns the current annual rate.
func (m *ShortRateModel) Rate() float64 { return m.rate }

// Advance steps the rate forward by deltaT years using the exact
// discretization of the Vasicek process:
//
//	mean     = b + (r - b) * exp(-a*dt)
//	variance = sigma^2/(2a) * (1 - exp(-2a*dt))
//
// The result is floored at zero: negative rates are disallowed by policy,
// not by the stochastic law.
func (m *ShortRateModel) Advance(deltaT float64) float64 {
	a := m.Params.SpeedOfReversion
	b := m.Params.MeanRate
	sigma := m.Params.Volatility

	exponent := math.Exp(-a * deltaT)
	mean := b + (m.rate-b)*exponent
	variance := (sigma * sigma / (2 * a)) * (1 - exponent*exponent)

	next := mean + math.Sqrt(variance)*m.src.NormFloat64()
	if next < 0 {
		next = 0
	}
	m.rate = next
	return m.rate
}
