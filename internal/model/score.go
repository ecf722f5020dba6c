package model

import (
	"fmt"
	"math"
	"strings"
)

// baselineFactor is 1 - e^-1, the factor applied to an advertiser that has
// not spent anything yet.
var baselineFactor = 1 - math.Exp(-1)

// Score trades bid size off against spend relative to budget:
//
//	bid * (1 - e^(-1 - spent/budget))
//
// A zero budget or zero spend yields the baseline bid*(1-e^-1). Callers pass
// the remaining budget, so the ratio grows as an advertiser drains.
func Score(budget, amountSpent, bid float64) float64 {
	if amountSpent == 0 || budget == 0 {
		return bid * baselineFactor
	}
	return bid * (1 - math.Exp(-1-amountSpent/budget))
}

// SpentFractionScore is bid * (1 - e^-(1 - spent/budget)) over the original
// budget, with the fraction clamped to [0,1]. It falls to 0 as the budget is
// used up.
func SpentFractionScore(budget, amountSpent, bid float64) float64 {
	if amountSpent == 0 || budget == 0 {
		return bid * baselineFactor
	}
	f := clampFraction(amountSpent / budget)
	return bid * (1 - math.Exp(-(1 - f)))
}

func clampFraction(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// Scorer evaluates one advertiser's bid for a query.
type Scorer interface {
	Name() string
	Score(a *Advertiser, bid float64) float64
}

const (
	ScorerRemainingBudget = "remaining-budget"
	ScorerSpentFraction   = "spent-fraction"
)

// RemainingBudgetScorer applies Score against the remaining budget. It is
// the default.
type RemainingBudgetScorer struct{}

func (RemainingBudgetScorer) Name() string { return ScorerRemainingBudget }

func (RemainingBudgetScorer) Score(a *Advertiser, bid float64) float64 {
	return Score(a.Remaining(), a.AmountSpent(), bid)
}

// SpentFractionScorer applies SpentFractionScore against the original
// budget.
type SpentFractionScorer struct{}

func (SpentFractionScorer) Name() string { return ScorerSpentFraction }

func (SpentFractionScorer) Score(a *Advertiser, bid float64) float64 {
	return SpentFractionScore(a.Budget(), a.AmountSpent(), bid)
}

// ParseScorer maps a scorer name to its implementation. The empty name
// selects the remaining-budget scorer.
func ParseScorer(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ScorerRemainingBudget:
		return RemainingBudgetScorer{}, nil
	case ScorerSpentFraction:
		return SpentFractionScorer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScorer, name)
	}
}
