package strategy

import (
	"errors"
	"fmt"
	"strings"

	"adwords-sim/internal/model"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Context is what a strategy sees at one step of the timeline.
type Context struct {
	Index int
	Query *model.Query
}

// Allocation is the outcome of one step. Winner is nil when no candidate
// could take the query.
type Allocation struct {
	Winner  *model.Candidate
	Charged bool
	Revenue float64
}

// Exhausted reports whether the step ended without a winner.
func (a Allocation) Exhausted() bool { return a.Winner == nil }

type Strategy interface {
	Name() string
	Allocate(ctx Context) Allocation
}

// Kind names one of the built-in strategies.
type Kind string

const (
	KindGreedy         Kind = "greedy"
	KindBalance        Kind = "balance"
	KindGeneralBalance Kind = "general-balance"
)

// All returns the built-in kinds in selector order (1, 2, 3).
func All() []Kind {
	return []Kind{KindGreedy, KindBalance, KindGeneralBalance}
}

// ParseKind accepts a menu number or a strategy name.
func ParseKind(selector string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(selector)) {
	case "1", "greedy":
		return KindGreedy, nil
	case "2", "balance":
		return KindBalance, nil
	case "3", "general-balance", "general_balance", "generalbalance", "gba":
		return KindGeneralBalance, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, selector)
	}
}

// New builds a strategy from a selector and its params.
func New(selector string, params map[string]any) (Strategy, error) {
	kind, err := ParseKind(selector)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindGreedy:
		return NewGreedy(), nil
	case KindBalance:
		return NewBalance(), nil
	default:
		scorer, err := model.ParseScorer(mustStr(params, "scoring", ""))
		if err != nil {
			return nil, fmt.Errorf("general-balance: %w", err)
		}
		return NewGeneralBalance(scorer), nil
	}
}

func mustStr(m map[string]any, key string, def string) string {
	if v, ok := m[key]; ok && v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return def
}
