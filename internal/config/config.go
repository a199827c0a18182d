package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Lejoon/mortage-repayment/internal/model"
	"github.com/Lejoon/mortage-repayment/internal/simulate"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Scenario   ScenarioConfig   `yaml:"scenario"`
	Run        RunConfig        `yaml:"run"`
	Strategies []StrategyConfig `yaml:"strategies"`
	Output     OutputConfig     `yaml:"output"`
}

type ScenarioConfig struct {
	InitialMortgage float64 `yaml:"initial_mortgage"`
	MonthlyCash     float64 `yaml:"monthly_cash"`
	InitialCash     float64 `yaml:"initial_cash"`
	InflationRate   float64 `yaml:"inflation_rate"`
	Months          int     `yaml:"months"`

	Rates  RatesConfig  `yaml:"rates"`
	Growth GrowthConfig `yaml:"growth"`
}

type RatesConfig struct {
	InitialRate      float64 `yaml:"initial_rate"`
	MeanRate         float64 `yaml:"mean_rate"`
	SpeedOfReversion float64 `yaml:"speed_of_reversion"`
	Volatility       float64 `yaml:"volatility"`
}

type GrowthConfig struct {
	ExpectedReturn float64 `yaml:"expected_return"`
	Volatility     float64 `yaml:"volatility"`
}

type RunConfig struct {
	Paths         int   `yaml:"paths"`
	Seed          int64 `yaml:"seed"`
	Workers       int   `yaml:"workers"`
	KeepHistories bool  `yaml:"keep_histories"`
}

type StrategyConfig struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

type OutputConfig struct {
	// CSVPath, when set, receives the full ledger of path 0 for each
	// strategy (suffixed with the strategy name).
	CSVPath string `yaml:"csv_path"`
	// SQLitePath, when set, enables the sqlite run recorder.
	SQLitePath string `yaml:"sqlite_path"`
}

// Load reads, defaults and validates a YAML config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Scenario.Months == 0 {
		c.Scenario.Months = 60
	}
	if c.Scenario.Rates.InitialRate == 0 {
		c.Scenario.Rates.InitialRate = c.Scenario.Rates.MeanRate
	}
	if c.Run.Paths == 0 {
		c.Run.Paths = 1000
	}
	if c.Run.Seed == 0 {
		c.Run.Seed = 1
	}
	if len(c.Strategies) == 0 {
		c.Strategies = []StrategyConfig{
			{Name: "mortgage_focus"},
			{Name: "investment_focus"},
		}
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.ToScenario().Validate(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	if err := c.ToRunOptions().Validate(); err != nil {
		return fmt.Errorf("run config invalid: %w", err)
	}
	for _, s := range c.Strategies {
		if s.Name == "" {
			return errors.New("strategies[].name is required")
		}
	}
	return nil
}

func (c *Config) ToScenario() simulate.Scenario {
	return simulate.Scenario{
		InitialMortgage: c.Scenario.InitialMortgage,
		MonthlyInflow:   c.Scenario.MonthlyCash,
		InitialCash:     c.Scenario.InitialCash,
		InflationRate:   c.Scenario.InflationRate,
		Rates: model.ShortRateParams{
			InitialRate:      c.Scenario.Rates.InitialRate,
			MeanRate:         c.Scenario.Rates.MeanRate,
			SpeedOfReversion: c.Scenario.Rates.SpeedOfReversion,
			Volatility:       c.Scenario.Rates.Volatility,
		},
		Growth: model.GrowthAssetParams{
			ExpectedReturn: c.Scenario.Growth.ExpectedReturn,
			Volatility:     c.Scenario.Growth.Volatility,
		},
		Periods: c.Scenario.Months,
	}
}

func (c *Config) ToRunOptions() simulate.RunOptions {
	return simulate.RunOptions{
		Paths:         c.Run.Paths,
		Seed:          c.Run.Seed,
		Workers:       c.Run.Workers,
		KeepHistories: c.Run.KeepHistories,
	}
}
