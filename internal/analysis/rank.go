package analysis

import (
	"sort"

	"adwords-sim/internal/simulate"
)

type RankedRun struct {
	Rank   int
	Result *simulate.Result
	Summary
}

// RankByRevenue summarizes runs and sorts them descending by TotalRevenue.
// Runs with equal revenue keep their input order.
func RankByRevenue(results []*simulate.Result) []RankedRun {
	out := make([]RankedRun, 0, len(results))
	for _, res := range results {
		out = append(out, RankedRun{Result: res, Summary: Summarize(res)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalRevenue > out[j].TotalRevenue
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
