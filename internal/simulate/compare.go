package simulate

import (
	"fmt"

	"adwords-sim/internal/model"
	"adwords-sim/internal/strategy"
)

// UniverseBuilder returns a new, unshared universe on every call.
type UniverseBuilder func() (*model.Universe, error)

// Compare runs each strategy in turn on its own freshly built universe.
// The runs are sequential and independent of each other.
func (e *Engine) Compare(build UniverseBuilder, timeline []string, strats []strategy.Strategy) ([]*Result, error) {
	results := make([]*Result, 0, len(strats))
	for _, s := range strats {
		u, err := build()
		if err != nil {
			return nil, err
		}
		res, err := e.Run(u, timeline, s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}
		results = append(results, res)
	}
	return results, nil
}
