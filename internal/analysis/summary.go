package analysis

import (
	"github.com/shopspring/decimal"

	"adwords-sim/internal/simulate"
)

// Summary is a run-level digest used for comparing strategies.
type Summary struct {
	Strategy string

	Steps       int
	Wins        int
	Exhaustions int

	TotalRevenue float64
	TotalBudget  float64
	TotalSpent   float64

	// Utilization is TotalSpent / TotalBudget, 0 when there is no budget.
	// Greedy never charges, so its utilization is always 0.
	Utilization float64

	// ExhaustedAdvertisers lists advertisers with nothing left to spend.
	ExhaustedAdvertisers []string
}

func Summarize(res *simulate.Result) Summary {
	if res == nil {
		return Summary{}
	}
	s := Summary{Strategy: res.Strategy}
	s.Steps = len(res.Ledger)
	s.TotalRevenue = res.TotalRevenue
	for _, r := range res.Ledger {
		if r.Outcome == simulate.OutcomeWon {
			s.Wins++
		} else {
			s.Exhaustions++
		}
	}

	budget, spent := decimal.Zero, decimal.Zero
	s.ExhaustedAdvertisers = make([]string, 0)
	for _, a := range res.Advertisers {
		budget = budget.Add(decimal.NewFromFloat(a.Budget))
		spent = spent.Add(decimal.NewFromFloat(a.AmountSpent))
		if a.Remaining == 0 {
			s.ExhaustedAdvertisers = append(s.ExhaustedAdvertisers, a.ID)
		}
	}
	s.TotalBudget, _ = budget.Float64()
	s.TotalSpent, _ = spent.Float64()
	if !budget.IsZero() {
		s.Utilization, _ = spent.Div(budget).Float64()
	}
	return s
}
