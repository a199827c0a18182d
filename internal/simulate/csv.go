package simulate

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteLedgerCSV writes one path's monthly records to a CSV file, one row
// per simulated month. Intended for external plotting tools.
func WriteLedgerCSV(path string, records []CashFlowRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"period",
		"inflow",
		"interest_payment",
		"mandatory_amortization",
		"extra_principal",
		"investment",
		"investment_return",
		"annual_rate",
		"pnl",
		"next_annual_rate",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Period),
			fmtFloat(r.Inflow),
			fmtFloat(r.InterestPayment),
			fmtFloat(r.MandatoryAmortization),
			fmtFloat(r.ExtraPrincipal),
			fmtFloat(r.Investment),
			fmtFloat(r.InvestmentReturn),
			fmtFloat(r.AnnualRate),
			fmtFloat(r.PNL),
			fmtFloat(r.NextAnnualRate),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
