package match

import (
	"strings"
	"time"
)

const (
	StatusUpcoming  = "UPCOMING"
	StatusLive      = "LIVE"
	StatusCompleted = "COMPLETED"
	StatusPostponed = "POSTPONED"
	StatusCancelled = "CANCELLED"
)

// Match is one scheduled tournament game. ScoreA/ScoreB stay nil until the
// provider (or an admin) reports them.
type Match struct {
	ID         string
	TeamAID    string
	TeamBID    string
	TeamAName  string
	TeamBName  string
	TeamAShort string
	TeamBShort string
	MatchDate  time.Time
	Venue      string
	Stage      string
	GroupName  string
	Status     string
	ScoreA     *int
	ScoreB     *int
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusUpcoming
	}
	return status
}

func IsValidStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusUpcoming, StatusLive, StatusCompleted, StatusPostponed, StatusCancelled:
		return true
	default:
		return false
	}
}

// HasFinalScore reports whether both scores are present.
func (m Match) HasFinalScore() bool {
	return m.ScoreA != nil && m.ScoreB != nil
}

// Label renders the match as "TeamA vs TeamB" for sync reports.
func (m Match) Label() string {
	return m.TeamAName + " vs " + m.TeamBName
}

// ApplyResult transitions the match to newStatus with the given score pair and
// reports whether this call is the one that completed it. Scoring must be
// invoked if and only if justCompleted is true: re-applying a result to an
// already COMPLETED match returns false, which keeps point awards idempotent
// under periodic re-sync.
func ApplyResult(m *Match, newStatus string, scoreA, scoreB int) (justCompleted bool) {
	newStatus = NormalizeStatus(newStatus)

	// COMPLETED is terminal: the final score is frozen and a later LIVE or
	// UPCOMING report from a noisy feed must not reopen the match.
	if m.Status == StatusCompleted {
		return false
	}

	// A LIVE match only moves forward. Scores exist exactly while the match
	// is LIVE or COMPLETED, so a report pulling it back to UPCOMING (or out
	// of play) is ignored rather than leaving a score pair on a non-live
	// match.
	if m.Status == StatusLive && newStatus != StatusLive && newStatus != StatusCompleted {
		return false
	}

	m.Status = newStatus
	if newStatus == StatusLive || newStatus == StatusCompleted {
		a, b := scoreA, scoreB
		m.ScoreA = &a
		m.ScoreB = &b
	}

	return newStatus == StatusCompleted
}
