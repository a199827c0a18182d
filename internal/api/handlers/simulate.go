package handlers

import (
	"net/http"

	"github.com/Lejoon/mortage-repayment/internal/analysis"
	"github.com/Lejoon/mortage-repayment/internal/api/models"
	"github.com/Lejoon/mortage-repayment/internal/model"
	"github.com/Lejoon/mortage-repayment/internal/simulate"
	"github.com/Lejoon/mortage-repayment/internal/strategy"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles Monte Carlo simulation requests
type SimulateHandler struct{}

// NewSimulateHandler creates a new simulate handler
func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	sc := buildScenario(req.Scenario)
	if err := sc.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}

	strat, err := strategy.FromConfig(req.Strategy.Name, req.Strategy.Params)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_STRATEGY",
				Message: err.Error(),
			},
		})
		return
	}

	opts := buildRunOptions(req.Options)
	result, err := simulate.Run(c.Request.Context(), sc, strat, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	resp := models.SimulateResponse{
		Status:  "ok",
		Summary: buildSummary(strat.Name(), sc, result),
	}
	if req.Options.IncludeSamplePath && len(result.Outcomes) > 0 {
		resp.SamplePath = buildLedgerRows(result.Outcomes[0].Records)
	}
	c.JSON(http.StatusOK, resp)
}

// CompareStrategies handles POST /api/v1/simulate/compare
func (h *SimulateHandler) CompareStrategies(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	if len(req.Strategies) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "at least one strategy is required",
			},
		})
		return
	}

	sc := buildScenario(req.Scenario)
	if err := sc.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}

	opts := buildRunOptions(req.Options)
	opts.KeepHistories = false

	comparison := make([]models.ComparisonResult, 0, len(req.Strategies))
	for _, sCfg := range req.Strategies {
		strat, err := strategy.FromConfig(sCfg.Name, sCfg.Params)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_STRATEGY",
					Message: err.Error(),
				},
			})
			return
		}

		// Same seed for every strategy: each variant sees identical
		// market paths, so differences are attributable to the strategy.
		result, err := simulate.Run(c.Request.Context(), sc, strat, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "SIMULATION_ERROR",
					Message: err.Error(),
				},
			})
			return
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:    strat.Name(),
			Summary: buildSummary(strat.Name(), sc, result),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

func buildScenario(s models.ScenarioConfig) simulate.Scenario {
	rates := model.ShortRateParams{
		InitialRate:      s.Rates.InitialRate,
		MeanRate:         s.Rates.MeanRate,
		SpeedOfReversion: s.Rates.SpeedOfReversion,
		Volatility:       s.Rates.Volatility,
	}
	if rates.InitialRate == 0 {
		rates.InitialRate = rates.MeanRate
	}
	return simulate.Scenario{
		InitialMortgage: s.InitialMortgage,
		MonthlyInflow:   s.MonthlyCash,
		InitialCash:     s.InitialCash,
		InflationRate:   s.InflationRate,
		Rates:           rates,
		Growth: model.GrowthAssetParams{
			ExpectedReturn: s.Growth.ExpectedReturn,
			Volatility:     s.Growth.Volatility,
		},
		Periods: s.Months,
	}
}

func buildRunOptions(o models.SimulateOptions) simulate.RunOptions {
	opts := simulate.RunOptions{
		Paths:         o.Paths,
		Seed:          o.Seed,
		Workers:       o.Workers,
		KeepHistories: o.IncludeSamplePath,
	}
	if opts.Paths == 0 {
		opts.Paths = 1000
	}
	if opts.Seed == 0 {
		opts.Seed = 1
	}
	return opts
}

func buildSummary(name string, sc simulate.Scenario, r *simulate.RunResult) models.RunSummary {
	equities := r.FinalEquities()
	return models.RunSummary{
		Strategy: name,
		Paths:    len(r.Outcomes),
		Months:   sc.Periods,

		FinalMortgage:     toMetricSummary(analysis.Summarize(r.FinalMortgages())),
		CumulativePaydown: toMetricSummary(analysis.Summarize(r.CumulativePaydowns())),
		FinalInvestment:   toMetricSummary(analysis.Summarize(r.FinalInvestments())),
		FinalEquity:       toMetricSummary(analysis.Summarize(equities)),
		NetFinalMortgage:  toMetricSummary(analysis.Summarize(r.NetFinalMortgages())),

		ProbNegativeEquity: analysis.FractionBelow(equities, 0),
	}
}

func toMetricSummary(s analysis.Summary) models.MetricSummary {
	return models.MetricSummary{
		Mean:   s.Mean,
		StdDev: s.StdDev,
		Min:    s.Min,
		Max:    s.Max,
		P05:    s.P05,
		P50:    s.P50,
		P95:    s.P95,
	}
}

func buildLedgerRows(records []simulate.CashFlowRecord) []models.LedgerRow {
	rows := make([]models.LedgerRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, models.LedgerRow{
			Period:                r.Period,
			Inflow:                r.Inflow,
			InterestPayment:       r.InterestPayment,
			MandatoryAmortization: r.MandatoryAmortization,
			ExtraPrincipal:        r.ExtraPrincipal,
			Investment:            r.Investment,
			InvestmentReturn:      r.InvestmentReturn,
			AnnualRate:            r.AnnualRate,
			PNL:                   r.PNL,
			NextAnnualRate:        r.NextAnnualRate,
		})
	}
	return rows
}
