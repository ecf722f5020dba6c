package strategy

import "log/slog"

var _ Strategy = (*Balance)(nil)

// Balance gives each query to the candidate with the most budget left and
// charges its bid. If that candidate cannot cover the bid the step is
// exhausted; no other candidate is tried.
type Balance struct{}

func NewBalance() *Balance { return &Balance{} }

func (b *Balance) Name() string { return string(KindBalance) }

func (b *Balance) Allocate(ctx Context) Allocation {
	c, ok := ctx.Query.PickHighestRemainingBudget()
	if !ok {
		slog.Debug("balance: no candidates", slog.Int("step", ctx.Index), slog.String("query", ctx.Query.Label))
		return Allocation{}
	}
	if !c.Advertiser.Charge(c.Bid) {
		slog.Debug("balance: top candidate cannot cover bid",
			slog.Int("step", ctx.Index),
			slog.String("query", ctx.Query.Label),
			slog.String("advertiser", c.Advertiser.ID),
			slog.Float64("remaining", c.Advertiser.Remaining()),
			slog.Float64("bid", c.Bid),
		)
		return Allocation{}
	}
	return Allocation{Winner: &c, Charged: true, Revenue: c.Bid}
}
