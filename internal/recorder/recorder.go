package recorder

import "github.com/Lejoon/mortage-repayment/internal/simulate"

// RunRecord summarizes one Monte Carlo batch for persistence.
type RunRecord struct {
	Strategy string
	Paths    int
	Periods  int
	Seed     int64

	InitialMortgage float64
	MonthlyInflow   float64

	MeanFinalMortgage  float64
	MeanFinalEquity    float64
	ProbNegativeEquity float64
}

// Recorder persists simulation runs for later analysis.
type Recorder interface {
	// RecordRun stores a run summary together with all per-path terminal
	// outcomes.
	RecordRun(run *RunRecord, outcomes []simulate.PathOutcome) error
	Close() error
}
