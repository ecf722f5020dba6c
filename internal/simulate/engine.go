package simulate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"adwords-sim/internal/model"
	"adwords-sim/internal/strategy"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run walks the timeline in order, letting strat allocate each query. Every
// step observes the budgets and candidate lists left by the steps before
// it, so the universe must not be shared with another run.
func (e *Engine) Run(u *model.Universe, timeline []string, strat strategy.Strategy) (*Result, error) {
	if u == nil {
		return nil, fmt.Errorf("universe is nil")
	}
	if strat == nil {
		return nil, fmt.Errorf("strategy is nil")
	}
	if err := u.ValidateTimeline(timeline); err != nil {
		return nil, err
	}

	ledger := make([]LedgerRow, 0, len(timeline))
	cum := decimal.Zero

	for idx, label := range timeline {
		q, _ := u.Query(label)
		alloc := strat.Allocate(strategy.Context{Index: idx, Query: q})

		row := LedgerRow{
			Index:      idx,
			QueryLabel: label,
			Outcome:    OutcomeExhausted,
		}
		if w := alloc.Winner; w != nil {
			cum = cum.Add(decimal.NewFromFloat(alloc.Revenue))

			row.Outcome = OutcomeWon
			row.AdvertiserID = w.Advertiser.ID
			row.Bid = w.Bid
			row.Score = w.Score
			row.Budget = w.Advertiser.Budget()
			row.Remaining = w.Advertiser.Remaining()
			row.AmountSpent = w.Advertiser.AmountSpent()
			row.Charged = alloc.Charged
			row.Revenue = alloc.Revenue
		}
		row.CumRevenue, _ = cum.Float64()
		row.CandidatesLeft = q.Len()
		ledger = append(ledger, row)
	}

	total, _ := cum.Float64()
	return &Result{
		Strategy:     strat.Name(),
		Ledger:       ledger,
		TotalRevenue: total,
		Advertisers:  u.Snapshot(),
	}, nil
}
