package model

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Advertiser is a budget-constrained bidder.
//
// The original budget never changes after construction; only the remaining
// budget is decremented by a successful charge. AmountSpent is derived from
// the two so that 0 <= AmountSpent <= Budget holds at all times.
type Advertiser struct {
	ID string

	budget    decimal.Decimal
	remaining decimal.Decimal
}

// AdvertiserState is a value snapshot of an advertiser, safe to keep after
// the run continues mutating the advertiser.
type AdvertiserState struct {
	ID          string  `json:"id"`
	Budget      float64 `json:"budget"`
	Remaining   float64 `json:"remaining"`
	AmountSpent float64 `json:"amount_spent"`
}

// NewAdvertiser returns an advertiser with nothing spent yet.
func NewAdvertiser(id string, budget float64) (*Advertiser, error) {
	if id == "" {
		return nil, ErrEmptyAdvertiserID
	}
	if math.IsNaN(budget) || math.IsInf(budget, 0) {
		return nil, fmt.Errorf("advertiser %s: %w", id, ErrNonFiniteBudget)
	}
	if budget < 0 {
		return nil, fmt.Errorf("advertiser %s: %w", id, ErrNegativeBudget)
	}
	b := decimal.NewFromFloat(budget)
	return &Advertiser{ID: id, budget: b, remaining: b}, nil
}

// Budget returns the original budget.
func (a *Advertiser) Budget() float64 {
	f, _ := a.budget.Float64()
	return f
}

// Remaining returns the budget left to spend.
func (a *Advertiser) Remaining() float64 {
	f, _ := a.remaining.Float64()
	return f
}

// AmountSpent is Budget minus Remaining.
func (a *Advertiser) AmountSpent() float64 {
	f, _ := a.budget.Sub(a.remaining).Float64()
	return f
}

// CanAfford reports whether the remaining budget covers bid.
func (a *Advertiser) CanAfford(bid float64) bool {
	return a.remaining.GreaterThanOrEqual(decimal.NewFromFloat(bid))
}

// Charge subtracts bid from the remaining budget. It returns false and
// leaves the advertiser untouched when the bid is not affordable.
func (a *Advertiser) Charge(bid float64) bool {
	if bid < 0 || !a.CanAfford(bid) {
		return false
	}
	a.remaining = a.remaining.Sub(decimal.NewFromFloat(bid))
	return true
}

// State snapshots the advertiser.
func (a *Advertiser) State() AdvertiserState {
	return AdvertiserState{
		ID:          a.ID,
		Budget:      a.Budget(),
		Remaining:   a.Remaining(),
		AmountSpent: a.AmountSpent(),
	}
}

func (a *Advertiser) String() string {
	return fmt.Sprintf("Advertiser: %s, Budget: %g, Remaining: %g, Amount spent: %g",
		a.ID, a.Budget(), a.Remaining(), a.AmountSpent())
}
