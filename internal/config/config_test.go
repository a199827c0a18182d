package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validConfig = `
scenario:
  initial_mortgage: 4100000
  monthly_cash: 17000
  months: 60
  rates:
    mean_rate: 0.03
    speed_of_reversion: 0.1
    volatility: 0.0111
  growth:
    expected_return: 0.08
    volatility: 0.20
run:
  paths: 10000
  seed: 42
strategies:
  - name: mortgage_focus
  - name: investment_focus
  - name: blended
    params:
      principal_share: 0.5
output:
  sqlite_path: results/runs.db
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatal(err)
	}

	sc := cfg.ToScenario()
	if sc.InitialMortgage != 4_100_000 || sc.MonthlyInflow != 17_000 || sc.Periods != 60 {
		t.Errorf("scenario mismatch: %+v", sc)
	}
	// initial_rate defaults to the mean rate when omitted.
	if sc.Rates.InitialRate != 0.03 {
		t.Errorf("initial rate = %v, want defaulted 0.03", sc.Rates.InitialRate)
	}

	opts := cfg.ToRunOptions()
	if opts.Paths != 10_000 || opts.Seed != 42 {
		t.Errorf("run options mismatch: %+v", opts)
	}

	if len(cfg.Strategies) != 3 {
		t.Errorf("strategies = %d, want 3", len(cfg.Strategies))
	}
	if cfg.Output.SQLitePath != "results/runs.db" {
		t.Errorf("sqlite path = %q", cfg.Output.SQLitePath)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
scenario:
  initial_mortgage: 1000000
  monthly_cash: 10000
  rates:
    mean_rate: 0.03
    speed_of_reversion: 0.1
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scenario.Months != 60 {
		t.Errorf("months = %d, want defaulted 60", cfg.Scenario.Months)
	}
	if cfg.Run.Paths != 1000 || cfg.Run.Seed != 1 {
		t.Errorf("run defaults: %+v", cfg.Run)
	}
	if len(cfg.Strategies) != 2 {
		t.Errorf("default strategies = %d, want 2", len(cfg.Strategies))
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing mortgage", `
scenario:
  monthly_cash: 10000
  rates: {mean_rate: 0.03, speed_of_reversion: 0.1}
`},
		{"zero speed of reversion", `
scenario:
  initial_mortgage: 1000000
  monthly_cash: 10000
  rates: {mean_rate: 0.03}
`},
		{"negative volatility", `
scenario:
  initial_mortgage: 1000000
  monthly_cash: 10000
  rates: {mean_rate: 0.03, speed_of_reversion: 0.1, volatility: -0.01}
`},
		{"unnamed strategy", `
scenario:
  initial_mortgage: 1000000
  monthly_cash: 10000
  rates: {mean_rate: 0.03, speed_of_reversion: 0.1}
strategies:
  - params: {principal_share: 0.5}
`},
		{"not yaml", `{{{{`},
	}
	for _, tc := range cases {
		if _, err := Load(writeConfig(t, tc.body)); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file: expected error, got nil")
	}
}
