package model

import (
	"errors"
	"math"
)

// GrowthAssetParams defines a geometric (GBM) growth process for an
// investment account. Returns are annual fractions.
type GrowthAssetParams struct {
	ExpectedReturn float64 // 'mu' parameter
	Volatility     float64 // 'sigma' parameter, must be >= 0
}

// GrowthAssetModel simulates one investment-account path. Starts at zero
// value; each step absorbs an exogenous contribution and then applies one
// period of multiplicative log-normal growth.
type GrowthAssetModel struct {
	Params GrowthAssetParams

	value float64
	src   NormalSource
}

func NewGrowthAssetModel(params GrowthAssetParams, src NormalSource) (*GrowthAssetModel, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("normal source is nil")
	}
	return &GrowthAssetModel{Params: params, src: src}, nil
}

func (p GrowthAssetParams) Validate() error {
	if p.Volatility < 0 {
		return errors.New("Volatility must be >= 0")
	}
	return nil
}

// Value returns the current account value.
func (m *GrowthAssetModel) Value() float64 { return m.value }

// Advance adds contribution to the account and applies one GBM step of
// length deltaT years:
//
//	S'  = (S + contribution) * exp((mu - sigma^2/2)*dt + sigma*sqrt(dt)*eps)
//
// An empty account receiving nothing stays exactly zero and consumes no
// random draw; once any capital exists, growth always applies.
func (m *GrowthAssetModel) Advance(deltaT, contribution float64) float64 {
	if m.value == 0 && contribution == 0 {
		return 0
	}

	mu := m.Params.ExpectedReturn
	sigma := m.Params.Volatility

	s := m.value + contribution
	growth := math.Exp((mu-0.5*sigma*sigma)*deltaT + sigma*math.Sqrt(deltaT)*m.src.NormFloat64())
	m.value = s * growth
	return m.value
}
