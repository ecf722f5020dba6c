package simulate

import (
	"fmt"
	"io"
)

const noWinnerMessage = "No advertiser with sufficient funds left"

// WriteReport prints one human-readable line per step followed by the
// total revenue.
func WriteReport(w io.Writer, res *Result) error {
	if _, err := fmt.Fprintf(w, "Strategy: %s\n", res.Strategy); err != nil {
		return err
	}
	for _, r := range res.Ledger {
		if err := writeStep(w, r); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Revenue: %g\n", res.TotalRevenue)
	return err
}

func writeStep(w io.Writer, r LedgerRow) error {
	if r.Outcome == OutcomeExhausted {
		_, err := fmt.Fprintf(w, "[%d] %s: %s, Revenue: %g\n", r.Index, r.QueryLabel, noWinnerMessage, r.CumRevenue)
		return err
	}
	_, err := fmt.Fprintf(w, "[%d] %s: Advertiser: %s, Budget: %g, Remaining: %g, Amount spent: %g, Bid: %g, Revenue: %g\n",
		r.Index, r.QueryLabel, r.AdvertiserID, r.Budget, r.Remaining, r.AmountSpent, r.Bid, r.CumRevenue)
	return err
}
