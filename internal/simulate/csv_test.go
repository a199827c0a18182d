package simulate

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteLedgerCSV(t *testing.T) {
	records := []CashFlowRecord{
		{Period: 0, Inflow: 17000, InterestPayment: -10250, MandatoryAmortization: 3416.67, AnnualRate: 0.03, PNL: 6750, NextAnnualRate: 0.031},
		{Period: 1, Inflow: 17000, InterestPayment: -10241, ExtraPrincipal: 3000, Investment: 500, AnnualRate: 0.031},
	}

	path := filepath.Join(t.TempDir(), "ledger.csv")
	if err := WriteLedgerCSV(path, records); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "period" || rows[0][1] != "inflow" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "0" || rows[2][0] != "1" {
		t.Errorf("period column: %v, %v", rows[1][0], rows[2][0])
	}
	if rows[1][2] != "-10250.000000" {
		t.Errorf("interest column = %q", rows[1][2])
	}
}
