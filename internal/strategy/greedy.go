package strategy

import "log/slog"

var _ Strategy = (*Greedy)(nil)

// Greedy gives each query to its first candidate. Bids are treated as unit
// bids, so every step with any candidate earns 1 and no budget is charged.
type Greedy struct{}

func NewGreedy() *Greedy { return &Greedy{} }

func (g *Greedy) Name() string { return string(KindGreedy) }

func (g *Greedy) Allocate(ctx Context) Allocation {
	c, ok := ctx.Query.PickFirstCandidate()
	if !ok {
		slog.Debug("greedy: no candidates", slog.Int("step", ctx.Index), slog.String("query", ctx.Query.Label))
		return Allocation{}
	}
	slog.Debug("greedy: picked first candidate",
		slog.Int("step", ctx.Index),
		slog.String("query", ctx.Query.Label),
		slog.String("advertiser", c.Advertiser.ID),
	)
	return Allocation{Winner: &c, Revenue: 1}
}
