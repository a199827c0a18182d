package simulate

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/Lejoon/mortage-repayment/internal/model"
	"github.com/Lejoon/mortage-repayment/internal/strategy"
)

// RunOptions configures one Monte Carlo batch.
type RunOptions struct {
	// Paths is the number of independent paths, M.
	Paths int

	// Seed is the base random seed. Path i draws from its own source
	// seeded with Seed+i, so results are bit-identical for a given seed
	// regardless of worker count.
	Seed int64

	// Workers is the fan-out width; 0 means runtime.NumCPU().
	Workers int

	// KeepHistories retains the full per-month records of every path.
	// Off by default: terminal metrics only.
	KeepHistories bool
}

func (o RunOptions) Validate() error {
	if o.Paths <= 0 {
		return errors.New("Paths must be > 0")
	}
	if o.Workers < 0 {
		return errors.New("Workers must be >= 0")
	}
	return nil
}

// PathOutcome is the terminal result of one path.
type PathOutcome struct {
	Path int

	FinalMortgage     float64
	CumulativePaydown float64
	FinalInvestment   float64
	FinalEquity       float64
	TotalInflow       float64
	NetFinalMortgage  float64

	// Records is nil unless RunOptions.KeepHistories is set.
	Records []CashFlowRecord
}

// RunResult collects the outcomes of a batch, ordered by path index.
type RunResult struct {
	Outcomes []PathOutcome
}

// Metric extractors for aggregation. Each returns a slice of length M in
// path order.

func (r *RunResult) FinalMortgages() []float64 {
	return r.metric(func(o PathOutcome) float64 { return o.FinalMortgage })
}

func (r *RunResult) CumulativePaydowns() []float64 {
	return r.metric(func(o PathOutcome) float64 { return o.CumulativePaydown })
}

func (r *RunResult) FinalInvestments() []float64 {
	return r.metric(func(o PathOutcome) float64 { return o.FinalInvestment })
}

func (r *RunResult) FinalEquities() []float64 {
	return r.metric(func(o PathOutcome) float64 { return o.FinalEquity })
}

func (r *RunResult) NetFinalMortgages() []float64 {
	return r.metric(func(o PathOutcome) float64 { return o.NetFinalMortgage })
}

func (r *RunResult) metric(f func(PathOutcome) float64) []float64 {
	out := make([]float64, len(r.Outcomes))
	for i, o := range r.Outcomes {
		out[i] = f(o)
	}
	return out
}

// Run executes opts.Paths independent paths of the scenario under the
// given strategy. Paths share nothing mutable: each gets fresh models, a
// fresh ledger and its own seeded random source. Cancellation is
// cooperative, checked between paths.
func Run(ctx context.Context, sc Scenario, strat strategy.Strategy, opts RunOptions) (*RunResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if strat == nil {
		return nil, errors.New("strategy is nil")
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers > opts.Paths {
		workers = opts.Paths
	}

	engine := New()
	outcomes := make([]PathOutcome, opts.Paths)
	jobs := make(chan int)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				mu.Lock()
				failed := firstErr != nil
				mu.Unlock()
				if failed {
					// Keep draining so the feeder never blocks.
					continue
				}
				src := model.NewSeededSource(opts.Seed + int64(i))
				res, err := engine.RunPath(sc, strat, src)
				if err != nil {
					setErr(fmt.Errorf("path %d: %w", i, err))
					continue
				}
				out := PathOutcome{
					Path:              i,
					FinalMortgage:     res.FinalMortgage,
					CumulativePaydown: res.CumulativePaydown,
					FinalInvestment:   res.FinalInvestment,
					FinalEquity:       res.FinalEquity,
					TotalInflow:       res.TotalInflow,
					NetFinalMortgage:  res.NetFinalMortgage,
				}
				if opts.KeepHistories {
					out.Records = res.Records
				}
				outcomes[i] = out
			}
		}()
	}

	// Feed path indices until done, cancelled, or a worker failed.
feed:
	for i := 0; i < opts.Paths; i++ {
		mu.Lock()
		failed := firstErr != nil
		mu.Unlock()
		if failed {
			break
		}
		if err := ctx.Err(); err != nil {
			setErr(err)
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			setErr(ctx.Err())
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return &RunResult{Outcomes: outcomes}, nil
}
