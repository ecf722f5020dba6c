package model

import (
	"fmt"
	"math"
	"slices"
)

// Query is a search query with the advertisers bidding on it. candidates and
// bids are index-aligned; every mutation keeps them that way.
//
// The advertisers are shared with the rest of the universe. The slices are
// owned by the query and may shrink during a run.
type Query struct {
	Label string

	candidates []*Advertiser
	bids       []float64
}

// Candidate is one advertiser's standing on a query at a single step.
type Candidate struct {
	Advertiser *Advertiser
	Bid        float64
	Score      float64
	// Index is the position in the candidate list when evaluated.
	Index int
}

// NewQuery copies candidates and bids, which must have the same length.
func NewQuery(label string, candidates []*Advertiser, bids []float64) (*Query, error) {
	if len(candidates) != len(bids) {
		return nil, fmt.Errorf("query %s: %w (%d candidates, %d bids)",
			label, ErrMisalignedBids, len(candidates), len(bids))
	}
	for i, a := range candidates {
		if a == nil {
			return nil, fmt.Errorf("query %s candidate %d: %w", label, i, ErrNilAdvertiser)
		}
		if math.IsNaN(bids[i]) || math.IsInf(bids[i], 0) {
			return nil, fmt.Errorf("query %s candidate %s: %w", label, a.ID, ErrNonFiniteBid)
		}
		if bids[i] < 0 {
			return nil, fmt.Errorf("query %s candidate %s: %w", label, a.ID, ErrNegativeBid)
		}
	}
	return &Query{
		Label:      label,
		candidates: slices.Clone(candidates),
		bids:       slices.Clone(bids),
	}, nil
}

// Len is the number of candidates still on the query.
func (q *Query) Len() int { return len(q.candidates) }

// Candidates returns the current candidates with their bids, unscored.
func (q *Query) Candidates() []Candidate {
	out := make([]Candidate, len(q.candidates))
	for i, a := range q.candidates {
		out[i] = Candidate{Advertiser: a, Bid: q.bids[i], Index: i}
	}
	return out
}

// Contains reports whether the advertiser is still a candidate.
func (q *Query) Contains(id string) bool {
	for _, a := range q.candidates {
		if a.ID == id {
			return true
		}
	}
	return false
}

// ComputeScores scores every current candidate against its aligned bid.
func (q *Query) ComputeScores(scorer Scorer) []Candidate {
	out := q.Candidates()
	for i := range out {
		out[i].Score = scorer.Score(out[i].Advertiser, out[i].Bid)
	}
	return out
}

// PickHighestScore returns the best scoring candidate. Ties go to the
// earliest candidate in list order.
func (q *Query) PickHighestScore(scorer Scorer) (Candidate, bool) {
	scored := q.ComputeScores(scorer)
	if len(scored) == 0 {
		return Candidate{}, false
	}
	best := scored[0]
	for _, c := range scored[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best, true
}

// PickFirstCandidate returns the first candidate regardless of bid or
// budget.
func (q *Query) PickFirstCandidate() (Candidate, bool) {
	if len(q.candidates) == 0 {
		return Candidate{}, false
	}
	return Candidate{Advertiser: q.candidates[0], Bid: q.bids[0]}, true
}

// PickHighestRemainingBudget returns the candidate with the most budget
// left. Ties go to the earliest candidate in list order.
func (q *Query) PickHighestRemainingBudget() (Candidate, bool) {
	cands := q.Candidates()
	if len(cands) == 0 {
		return Candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Advertiser.Remaining() > best.Advertiser.Remaining() {
			best = c
		}
	}
	return best, true
}

// ResolveAndCharge charges the best scoring candidate that can afford its
// bid. Candidates that cannot are dropped from the query for good, so later
// visits never consider them again. It returns false once no candidate is
// left.
func (q *Query) ResolveAndCharge(scorer Scorer) (Candidate, bool) {
	for len(q.candidates) > 0 {
		c, _ := q.PickHighestScore(scorer)
		if c.Advertiser.Charge(c.Bid) {
			return c, true
		}
		q.remove(c.Index)
	}
	return Candidate{}, false
}

func (q *Query) remove(i int) {
	q.candidates = slices.Delete(q.candidates, i, i+1)
	q.bids = slices.Delete(q.bids, i, i+1)
}
