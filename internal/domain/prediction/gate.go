package prediction

import "time"

// Gate decides whether a prediction write is still allowed relative to
// kickoff. Create/update and cancel close at independently configured leads;
// the two values are conceptually the same decision but have never been
// unified in the product, so they stay separate knobs.
type Gate struct {
	CreateCutoff time.Duration
	CancelCutoff time.Duration
}

// CanCreate reports whether a new or updated prediction is still allowed.
// The window closes exactly at matchDate - CreateCutoff.
func (g Gate) CanCreate(matchDate, now time.Time) bool {
	return now.Before(matchDate.Add(-g.CreateCutoff))
}

// CanCancel reports whether the owner may still delete their prediction.
func (g Gate) CanCancel(matchDate, now time.Time) bool {
	return now.Before(matchDate.Add(-g.CancelCutoff))
}

// CreateDeadline returns the instant after which CanCreate denies writes.
func (g Gate) CreateDeadline(matchDate time.Time) time.Time {
	return matchDate.Add(-g.CreateCutoff)
}
