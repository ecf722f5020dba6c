package simulate

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return EncodeLedgerCSV(f, ledger)
}

func EncodeLedgerCSV(out io.Writer, ledger []LedgerRow) error {
	w := csv.NewWriter(out)

	header := []string{
		"index",
		"query",
		"outcome",
		"advertiser",
		"bid",
		"score",
		"budget",
		"remaining",
		"amount_spent",
		"charged",
		"revenue",
		"cum_revenue",
		"candidates_left",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Index),
			r.QueryLabel,
			string(r.Outcome),
			r.AdvertiserID,
			fmtFloat(r.Bid),
			fmtFloat(r.Score),
			fmtFloat(r.Budget),
			fmtFloat(r.Remaining),
			fmtFloat(r.AmountSpent),
			strconv.FormatBool(r.Charged),
			fmtFloat(r.Revenue),
			fmtFloat(r.CumRevenue),
			strconv.Itoa(r.CandidatesLeft),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
