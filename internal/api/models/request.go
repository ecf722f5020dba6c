package models

// SimulationRequest represents the request body for running one strategy
type SimulationRequest struct {
	Strategy string                 `json:"strategy" binding:"required"` // "1"|"2"|"3" or a strategy name
	Params   map[string]interface{} `json:"params,omitempty"`
	Universe *UniverseConfig        `json:"universe,omitempty"` // default: built-in sample
	Options  SimulationOptions      `json:"options,omitempty"`
}

// SimulationOptions contains optional simulation parameters
type SimulationOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}

// UniverseConfig describes advertisers, queries and the timeline.
// Preset names a YAML file in the universe directory; inline sections
// override the preset's.
type UniverseConfig struct {
	Preset      string             `json:"preset,omitempty"`
	Advertisers []AdvertiserConfig `json:"advertisers,omitempty"`
	Queries     []QueryConfig      `json:"queries,omitempty"`
	Timeline    []string           `json:"timeline,omitempty"`
}

// AdvertiserConfig defines one advertiser and its budget
type AdvertiserConfig struct {
	ID     string  `json:"id"`
	Budget float64 `json:"budget"`
}

// QueryConfig defines a query with index-aligned advertisers and bids
type QueryConfig struct {
	Label       string    `json:"label"`
	Advertisers []string  `json:"advertisers"`
	Bids        []float64 `json:"bids"`
}

// CompareRequest runs several strategies on the same universe
type CompareRequest struct {
	Strategies []string               `json:"strategies,omitempty"` // default: all
	Params     map[string]interface{} `json:"params,omitempty"`
	Universe   *UniverseConfig        `json:"universe,omitempty"`
}
