package data

import "adwords-sim/internal/config"

// Sample returns the fixed four-advertiser, four-query universe with its
// eight-step timeline. Every call returns a new config.
func Sample() *config.Config {
	return &config.Config{
		Strategy: config.StrategyConfig{Name: "general-balance"},
		Advertisers: []config.AdvertiserConfig{
			{ID: "a1", Budget: 3},
			{ID: "a2", Budget: 1},
			{ID: "a3", Budget: 1},
			{ID: "a4", Budget: 2},
		},
		Queries: []config.QueryConfig{
			{Label: "q1", Advertisers: []string{"a1", "a4"}, Bids: []float64{0.5, 0.75}},
			{Label: "q2", Advertisers: []string{"a2", "a3"}, Bids: []float64{0.5, 0.5}},
			{Label: "q3", Advertisers: []string{"a1"}, Bids: []float64{1}},
			{Label: "q4", Advertisers: []string{"a3"}, Bids: []float64{1}},
		},
		Timeline: []string{"q1", "q2", "q3", "q4", "q3", "q3", "q2", "q4"},
	}
}
