package models

// SimulateResponse represents the response from a Monte Carlo run
type SimulateResponse struct {
	Status     string      `json:"status"`
	Summary    RunSummary  `json:"summary"`
	SamplePath []LedgerRow `json:"sample_path,omitempty"`
}

// RunSummary contains aggregated terminal statistics
type RunSummary struct {
	Strategy string `json:"strategy"`
	Paths    int    `json:"paths"`
	Months   int    `json:"months"`

	FinalMortgage     MetricSummary `json:"final_mortgage"`
	CumulativePaydown MetricSummary `json:"cumulative_paydown"`
	FinalInvestment   MetricSummary `json:"final_investment"`
	FinalEquity       MetricSummary `json:"final_equity"`

	// NetFinalMortgage is the balance remaining after a hypothetical
	// liquidation of the portfolio into principal at the horizon.
	NetFinalMortgage MetricSummary `json:"net_final_mortgage"`

	// ProbNegativeEquity is the fraction of paths ending with
	// terminal equity below zero.
	ProbNegativeEquity float64 `json:"prob_negative_equity"`
}

// MetricSummary aggregates one terminal metric across paths
type MetricSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P05    float64 `json:"p05"`
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`
}

// LedgerRow represents one month in a sample path ledger
type LedgerRow struct {
	Period                int     `json:"period"`
	Inflow                float64 `json:"inflow"`
	InterestPayment       float64 `json:"interest_payment"`
	MandatoryAmortization float64 `json:"mandatory_amortization"`
	ExtraPrincipal        float64 `json:"extra_principal"`
	Investment            float64 `json:"investment"`
	InvestmentReturn      float64 `json:"investment_return"`
	AnnualRate            float64 `json:"annual_rate"`
	PNL                   float64 `json:"pnl"`
	NextAnnualRate        float64 `json:"next_annual_rate"`
}

// CompareResponse represents the response from a strategy comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one strategy
type ComparisonResult struct {
	Name    string     `json:"name"`
	Summary RunSummary `json:"summary"`
}

// StrategyInfo represents information about a strategy
type StrategyInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a strategy parameter
type ParameterInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "float", "int", "string"
	Description string `json:"description"`
	Default     any    `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
