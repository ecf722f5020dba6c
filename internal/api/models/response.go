package models

import "adwords-sim/internal/model"

// SimulationResponse represents the response from a simulation run
type SimulationResponse struct {
	ID          string                  `json:"id"`
	Status      string                  `json:"status"`
	Summary     RunSummary              `json:"summary"`
	Advertisers []model.AdvertiserState `json:"advertisers"`
	Ledger      []LedgerRow             `json:"ledger,omitempty"`
}

// RunSummary contains aggregated results of one run
type RunSummary struct {
	Strategy             string   `json:"strategy"`
	Steps                int      `json:"steps"`
	Wins                 int      `json:"wins"`
	Exhaustions          int      `json:"exhaustions"`
	TotalRevenue         float64  `json:"total_revenue"`
	TotalBudget          float64  `json:"total_budget"`
	TotalSpent           float64  `json:"total_spent"`
	Utilization          float64  `json:"utilization"`
	ExhaustedAdvertisers []string `json:"exhausted_advertisers"`
}

// LedgerRow represents one timeline step
type LedgerRow struct {
	Index          int     `json:"index"`
	Query          string  `json:"query"`
	Outcome        string  `json:"outcome"` // "WON", "EXHAUSTED"
	AdvertiserID   string  `json:"advertiser_id,omitempty"`
	Bid            float64 `json:"bid"`
	Score          float64 `json:"score"`
	Budget         float64 `json:"budget"`
	Remaining      float64 `json:"remaining"`
	AmountSpent    float64 `json:"amount_spent"`
	Charged        bool    `json:"charged"`
	Revenue        float64 `json:"revenue"`
	CumRevenue     float64 `json:"cum_revenue"`
	CandidatesLeft int     `json:"candidates_left"`
}

// LedgerResponse is returned when fetching a cached run
type LedgerResponse struct {
	ID       string      `json:"id"`
	Strategy string      `json:"strategy"`
	Ledger   []LedgerRow `json:"ledger"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking is one ranked run
type Ranking struct {
	Rank int    `json:"rank"`
	ID   string `json:"id"`
	RunSummary
}

// StrategyInfo represents information about a strategy
type StrategyInfo struct {
	Name        string          `json:"name"`
	Selector    string          `json:"selector"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a strategy parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// UniverseInfo represents a universe preset on disk
type UniverseInfo struct {
	ID          string `json:"id"`
	File        string `json:"file"`
	Advertisers int    `json:"advertisers"`
	Queries     int    `json:"queries"`
	Steps       int    `json:"steps"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
