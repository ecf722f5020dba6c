package model

import "errors"

// Setup errors. All of these are raised while building a universe, never
// while a run is resolving queries.
var (
	ErrEmptyAdvertiserID   = errors.New("advertiser id is empty")
	ErrNegativeBudget      = errors.New("budget must be >= 0")
	ErrNonFiniteBudget     = errors.New("budget must be a finite number")
	ErrNilAdvertiser       = errors.New("candidate advertiser is nil")
	ErrNegativeBid         = errors.New("bid must be >= 0")
	ErrNonFiniteBid        = errors.New("bid must be a finite number")
	ErrNilQuery            = errors.New("query is nil")
	ErrMisalignedBids      = errors.New("candidates and bids differ in length")
	ErrDuplicateAdvertiser = errors.New("duplicate advertiser id")
	ErrDuplicateQuery      = errors.New("duplicate query label")
	ErrUnknownAdvertiser   = errors.New("unknown advertiser")
	ErrUnknownQuery        = errors.New("unknown query")
	ErrUnknownScorer       = errors.New("unknown scorer")
)
