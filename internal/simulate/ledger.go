package simulate

import "adwords-sim/internal/model"

// Outcome labels a ledger row. Keep these values stable; they are intended
// for CSV output.
type Outcome string

const (
	OutcomeWon       Outcome = "WON"
	OutcomeExhausted Outcome = "EXHAUSTED"
)

// LedgerRow is one timeline step. Winner fields are zero on an exhausted
// step; Budget, Remaining and AmountSpent describe the winner after the
// step.
type LedgerRow struct {
	Index      int
	QueryLabel string

	Outcome Outcome

	AdvertiserID string
	Bid          float64
	Score        float64
	Budget       float64
	Remaining    float64
	AmountSpent  float64
	Charged      bool

	Revenue    float64
	CumRevenue float64

	CandidatesLeft int
}

type Result struct {
	Strategy     string
	Ledger       []LedgerRow
	TotalRevenue float64
	Advertisers  []model.AdvertiserState
}
