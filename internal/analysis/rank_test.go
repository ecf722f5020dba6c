package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adwords-sim/internal/data"
	"adwords-sim/internal/simulate"
	"adwords-sim/internal/strategy"
)

func sampleResults(t *testing.T) []*simulate.Result {
	t.Helper()
	cfg := data.Sample()
	strats := make([]strategy.Strategy, 0, 3)
	for _, k := range strategy.All() {
		s, err := strategy.New(string(k), nil)
		require.NoError(t, err)
		strats = append(strats, s)
	}
	results, err := simulate.New().Compare(cfg.Build, cfg.Timeline, strats)
	require.NoError(t, err)
	return results
}

func TestRankByRevenue_Sample(t *testing.T) {
	ranked := RankByRevenue(sampleResults(t))
	require.Len(t, ranked, 3)

	assert.Equal(t, "greedy", ranked[0].Strategy)
	assert.Equal(t, 8.0, ranked[0].TotalRevenue)
	assert.Equal(t, "general-balance", ranked[1].Strategy)
	assert.Equal(t, 5.75, ranked[1].TotalRevenue)
	assert.Equal(t, "balance", ranked[2].Strategy)
	assert.Equal(t, 4.5, ranked[2].TotalRevenue)

	for i, r := range ranked {
		assert.Equal(t, i+1, r.Rank)
	}
}

func TestRankByRevenue_TiesKeepInputOrder(t *testing.T) {
	results := []*simulate.Result{
		{Strategy: "first", TotalRevenue: 2},
		{Strategy: "second", TotalRevenue: 2},
		{Strategy: "best", TotalRevenue: 3},
	}
	ranked := RankByRevenue(results)
	assert.Equal(t, "best", ranked[0].Strategy)
	assert.Equal(t, "first", ranked[1].Strategy)
	assert.Equal(t, "second", ranked[2].Strategy)
}

func TestSummarize(t *testing.T) {
	results := sampleResults(t)

	greedy := Summarize(results[0])
	assert.Equal(t, 8, greedy.Wins)
	assert.Equal(t, 0, greedy.Exhaustions)
	assert.Equal(t, 0.0, greedy.Utilization)
	assert.Empty(t, greedy.ExhaustedAdvertisers)

	balance := Summarize(results[1])
	assert.Equal(t, 6, balance.Wins)
	assert.Equal(t, 2, balance.Exhaustions)
	assert.Equal(t, 7.0, balance.TotalBudget)
	assert.Equal(t, 4.5, balance.TotalSpent)
	assert.Equal(t, []string{"a2", "a3"}, balance.ExhaustedAdvertisers)

	gb := Summarize(results[2])
	assert.Equal(t, 8, gb.Steps)
	assert.Equal(t, 7, gb.Wins)
	assert.Equal(t, 1, gb.Exhaustions)
	assert.Equal(t, 5.75, gb.TotalSpent)
	assert.InDelta(t, 5.75/7, gb.Utilization, 1e-12)
	assert.Equal(t, []string{"a1", "a2", "a3"}, gb.ExhaustedAdvertisers)

	assert.Equal(t, Summary{}, Summarize(nil))
}
