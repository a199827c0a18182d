package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Lejoon/mortage-repayment/internal/simulate"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists runs and per-path outcomes to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id                   INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp            INTEGER NOT NULL,
			strategy             TEXT,
			paths                INTEGER,
			periods              INTEGER,
			seed                 INTEGER,
			initial_mortgage     REAL,
			monthly_inflow       REAL,
			mean_final_mortgage  REAL,
			mean_final_equity    REAL,
			prob_negative_equity REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS path_outcomes (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id             INTEGER NOT NULL,
			path               INTEGER NOT NULL,
			final_mortgage     REAL,
			cumulative_paydown REAL,
			final_investment   REAL,
			final_equity       REAL,
			total_inflow       REAL,
			FOREIGN KEY(run_id) REFERENCES runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outcomes_run ON path_outcomes(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(run *RunRecord, outcomes []simulate.PathOutcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs
		(timestamp, strategy, paths, periods, seed,
		 initial_mortgage, monthly_inflow,
		 mean_final_mortgage, mean_final_equity, prob_negative_equity)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), run.Strategy, run.Paths, run.Periods, run.Seed,
		run.InitialMortgage, run.MonthlyInflow,
		run.MeanFinalMortgage, run.MeanFinalEquity, run.ProbNegativeEquity,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO path_outcomes
		(run_id, path, final_mortgage, cumulative_paydown, final_investment, final_equity, total_inflow)
		VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare outcomes: %w", err)
	}
	defer stmt.Close()

	for _, o := range outcomes {
		if _, err := stmt.Exec(runID, o.Path,
			o.FinalMortgage, o.CumulativePaydown, o.FinalInvestment, o.FinalEquity, o.TotalInflow,
		); err != nil {
			return fmt.Errorf("insert outcome %d: %w", o.Path, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
