package strategy

import (
	"log/slog"

	"adwords-sim/internal/model"
)

var _ Strategy = (*GeneralBalance)(nil)

// GeneralBalance gives each query to the candidate with the best
// bid/budget trade-off score that can still pay. Candidates found unable to
// pay are removed from the query for the rest of the run.
type GeneralBalance struct {
	Scorer model.Scorer
}

// NewGeneralBalance falls back to the remaining-budget scorer when scorer
// is nil.
func NewGeneralBalance(scorer model.Scorer) *GeneralBalance {
	if scorer == nil {
		scorer = model.RemainingBudgetScorer{}
	}
	return &GeneralBalance{Scorer: scorer}
}

func (g *GeneralBalance) Name() string { return string(KindGeneralBalance) }

func (g *GeneralBalance) Allocate(ctx Context) Allocation {
	before := ctx.Query.Len()
	c, ok := ctx.Query.ResolveAndCharge(g.Scorer)
	if dropped := before - ctx.Query.Len(); dropped > 0 {
		slog.Debug("general-balance: dropped exhausted candidates",
			slog.Int("step", ctx.Index),
			slog.String("query", ctx.Query.Label),
			slog.Int("dropped", dropped),
		)
	}
	if !ok {
		return Allocation{}
	}
	slog.Debug("general-balance: charged",
		slog.Int("step", ctx.Index),
		slog.String("query", ctx.Query.Label),
		slog.String("advertiser", c.Advertiser.ID),
		slog.Float64("score", c.Score),
		slog.Float64("bid", c.Bid),
	)
	return Allocation{Winner: &c, Charged: true, Revenue: c.Bid}
}
