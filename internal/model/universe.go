package model

import "fmt"

// Universe is the fixed set of advertisers and queries one run operates on.
// Advertisers keep their registration order; lookups go through the maps.
type Universe struct {
	Advertisers []*Advertiser
	Queries     []*Query

	advertisers map[string]*Advertiser
	queries     map[string]*Query
}

// NewUniverse indexes advertisers and queries and checks that every query
// candidate is one of the given advertisers.
func NewUniverse(advertisers []*Advertiser, queries []*Query) (*Universe, error) {
	u := &Universe{
		Advertisers: advertisers,
		Queries:     queries,
		advertisers: make(map[string]*Advertiser, len(advertisers)),
		queries:     make(map[string]*Query, len(queries)),
	}
	for _, a := range advertisers {
		if a == nil {
			return nil, ErrNilAdvertiser
		}
		if _, dup := u.advertisers[a.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAdvertiser, a.ID)
		}
		u.advertisers[a.ID] = a
	}
	for _, q := range queries {
		if q == nil {
			return nil, ErrNilQuery
		}
		if _, dup := u.queries[q.Label]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateQuery, q.Label)
		}
		for _, c := range q.candidates {
			if u.advertisers[c.ID] != c {
				return nil, fmt.Errorf("query %s: %w: %s", q.Label, ErrUnknownAdvertiser, c.ID)
			}
		}
		u.queries[q.Label] = q
	}
	return u, nil
}

func (u *Universe) Advertiser(id string) (*Advertiser, bool) {
	a, ok := u.advertisers[id]
	return a, ok
}

func (u *Universe) Query(label string) (*Query, bool) {
	q, ok := u.queries[label]
	return q, ok
}

// ValidateTimeline fails on the first label that names no query.
func (u *Universe) ValidateTimeline(timeline []string) error {
	for i, label := range timeline {
		if _, ok := u.queries[label]; !ok {
			return fmt.Errorf("timeline[%d]: %w: %s", i, ErrUnknownQuery, label)
		}
	}
	return nil
}

// Snapshot returns the current state of every advertiser in registration
// order.
func (u *Universe) Snapshot() []AdvertiserState {
	out := make([]AdvertiserState, len(u.Advertisers))
	for i, a := range u.Advertisers {
		out[i] = a.State()
	}
	return out
}
