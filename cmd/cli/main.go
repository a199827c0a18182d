package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Lejoon/mortage-repayment/internal/analysis"
	"github.com/Lejoon/mortage-repayment/internal/config"
	"github.com/Lejoon/mortage-repayment/internal/recorder"
	"github.com/Lejoon/mortage-repayment/internal/simulate"
	"github.com/Lejoon/mortage-repayment/internal/strategy"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config")
	paths := flag.Int("paths", 0, "Override: number of Monte Carlo paths")
	months := flag.Int("months", 0, "Override: horizon in months")
	seed := flag.Int64("seed", 0, "Override: base random seed")
	outCSV := flag.String("out", "", "Optional: write path-0 ledger CSV per strategy")
	dbPath := flag.String("db", "", "Optional: record runs to a SQLite database")
	flag.Parse()

	if *cfgPath == "" {
		fmt.Println("usage: cli --config examples/config.yaml [--paths N] [--months N] [--seed N] [--out results/ledger.csv] [--db results/runs.db]")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	sc := cfg.ToScenario()
	opts := cfg.ToRunOptions()
	if *paths > 0 {
		opts.Paths = *paths
	}
	if *months > 0 {
		sc.Periods = *months
	}
	if *seed != 0 {
		opts.Seed = *seed
	}
	if *outCSV != "" {
		opts.KeepHistories = true
	}

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	sqlitePath := cfg.Output.SQLitePath
	if *dbPath != "" {
		sqlitePath = *dbPath
	}
	if sqlitePath != "" {
		sqliteRec, err := recorder.NewSQLiteRecorder(sqlitePath)
		if err != nil {
			log.Fatalf("open recorder: %v", err)
		}
		rec = sqliteRec
	}
	defer rec.Close()

	fmt.Printf("Scenario: mortgage=%.0f monthly_cash=%.0f months=%d paths=%d seed=%d\n\n",
		sc.InitialMortgage, sc.MonthlyInflow, sc.Periods, opts.Paths, opts.Seed)

	for _, sCfg := range cfg.Strategies {
		strat, err := strategy.FromConfig(sCfg.Name, sCfg.Params)
		if err != nil {
			log.Fatalf("build strategy: %v", err)
		}

		// Same seed for every strategy so each variant sees the same
		// simulated markets.
		result, err := simulate.Run(context.Background(), sc, strat, opts)
		if err != nil {
			log.Fatalf("simulate %s: %v", strat.Name(), err)
		}

		report(strat.Name(), result)

		if *outCSV != "" {
			path := csvPathFor(*outCSV, strat.Name())
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				log.Fatalf("create output dir: %v", err)
			}
			if err := simulate.WriteLedgerCSV(path, result.Outcomes[0].Records); err != nil {
				log.Fatalf("write csv: %v", err)
			}
			fmt.Printf("  wrote sample path ledger: %s\n", path)
		}

		equities := result.FinalEquities()
		if err := rec.RecordRun(&recorder.RunRecord{
			Strategy:           strat.Name(),
			Paths:              opts.Paths,
			Periods:            sc.Periods,
			Seed:               opts.Seed,
			InitialMortgage:    sc.InitialMortgage,
			MonthlyInflow:      sc.MonthlyInflow,
			MeanFinalMortgage:  analysis.Summarize(result.FinalMortgages()).Mean,
			MeanFinalEquity:    analysis.Summarize(equities).Mean,
			ProbNegativeEquity: analysis.FractionBelow(equities, 0),
		}, result.Outcomes); err != nil {
			log.Fatalf("record run: %v", err)
		}

		fmt.Println()
	}
}

func report(name string, r *simulate.RunResult) {
	mortgage := analysis.Summarize(r.FinalMortgages())
	paydown := analysis.Summarize(r.CumulativePaydowns())
	investment := analysis.Summarize(r.FinalInvestments())
	equities := r.FinalEquities()
	equity := analysis.Summarize(equities)

	net := analysis.Summarize(r.NetFinalMortgages())

	fmt.Printf("Strategy: %s\n", name)
	fmt.Printf("  Expected final mortgage balance:  %14.2f (p05=%.2f p95=%.2f)\n", mortgage.Mean, mortgage.P05, mortgage.P95)
	fmt.Printf("  Expected cumulative paydown:      %14.2f\n", paydown.Mean)
	fmt.Printf("  Expected final portfolio value:   %14.2f\n", investment.Mean)
	fmt.Printf("  Expected balance net of portfolio:%14.2f\n", net.Mean)
	fmt.Printf("  Expected final equity:            %14.2f (VaR 5%%=%.2f)\n", equity.Mean, equity.P05)
	fmt.Printf("  P(final equity < 0):              %14.4f\n", analysis.FractionBelow(equities, 0))
}

// csvPathFor inserts the strategy name before the extension:
// results/ledger.csv -> results/ledger_mortgage_focus.csv
func csvPathFor(base, name string) string {
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "_" + name + ext
}
