package models

// SimulateRequest represents the request body for running a Monte Carlo batch
type SimulateRequest struct {
	Scenario ScenarioConfig  `json:"scenario" binding:"required"`
	Strategy StrategyConfig  `json:"strategy" binding:"required"`
	Options  SimulateOptions `json:"options,omitempty"`
}

// ScenarioConfig defines the simulated household and market parameters
type ScenarioConfig struct {
	InitialMortgage float64      `json:"initial_mortgage" binding:"required"`
	MonthlyCash     float64      `json:"monthly_cash"`
	InitialCash     float64      `json:"initial_cash,omitempty"`
	InflationRate   float64      `json:"inflation_rate,omitempty"`
	Months          int          `json:"months" binding:"required"`
	Rates           RatesConfig  `json:"rates" binding:"required"`
	Growth          GrowthConfig `json:"growth"`
}

// RatesConfig defines the mean-reverting short-rate parameters
type RatesConfig struct {
	InitialRate      float64 `json:"initial_rate"`
	MeanRate         float64 `json:"mean_rate"`
	SpeedOfReversion float64 `json:"speed_of_reversion" binding:"required"`
	Volatility       float64 `json:"volatility"`
}

// GrowthConfig defines the investment growth parameters
type GrowthConfig struct {
	ExpectedReturn float64 `json:"expected_return"`
	Volatility     float64 `json:"volatility"`
}

// StrategyConfig defines strategy and its parameters
type StrategyConfig struct {
	Name   string         `json:"name" binding:"required"`
	Params map[string]any `json:"params,omitempty"`
}

// SimulateOptions contains optional run parameters
type SimulateOptions struct {
	Paths             int   `json:"paths,omitempty"`               // default: 1000
	Seed              int64 `json:"seed,omitempty"`                // default: 1
	Workers           int   `json:"workers,omitempty"`             // 0 = NumCPU
	IncludeSamplePath bool  `json:"include_sample_path,omitempty"` // default: false
}

// CompareRequest runs one scenario under several strategies
type CompareRequest struct {
	Scenario   ScenarioConfig   `json:"scenario" binding:"required"`
	Strategies []StrategyConfig `json:"strategies" binding:"required"`
	Options    SimulateOptions  `json:"options,omitempty"`
}
