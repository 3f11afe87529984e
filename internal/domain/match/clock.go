package match

import (
	"fmt"
	"time"
)

const (
	firstHalfEnd         = 45
	firstHalfStoppageEnd = 48
	halftimeEnd          = 63
	// Fixed allowance subtracted once the second half starts: 3 minutes of
	// first-half stoppage plus the 15 minute break.
	secondHalfOffset = 18

	// AutoCompleteAfter is the wall-clock elapsed time past which a match
	// still reported LIVE is treated as finished even without provider
	// confirmation.
	AutoCompleteAfter = 110 * time.Minute
)

// Minute labels with no numeric component.
const (
	MinuteHalftime = "HT"
	MinuteFulltime = "FT"
)

// EstimateMinute maps wall-clock time since kickoff to a display minute for a
// LIVE match. The model is approximate on purpose: stoppage and halftime use
// fixed allowances so the label feels live without a minute-by-minute feed.
func EstimateMinute(kickoff, now time.Time) string {
	elapsed := int(now.Sub(kickoff) / time.Minute)
	if elapsed < 0 {
		return "LIVE"
	}

	switch {
	case elapsed <= firstHalfEnd:
		minute := elapsed
		if minute < 1 {
			minute = 1
		}
		return fmt.Sprintf("%d", minute)
	case elapsed <= firstHalfStoppageEnd:
		return fmt.Sprintf("45+%d", elapsed-firstHalfEnd)
	case elapsed <= halftimeEnd:
		return MinuteHalftime
	}

	secondHalf := elapsed - secondHalfOffset
	switch {
	case secondHalf <= 90:
		return fmt.Sprintf("%d", secondHalf)
	case secondHalf <= 95:
		return fmt.Sprintf("90+%d", secondHalf-90)
	default:
		return MinuteFulltime
	}
}

// ShouldAutoComplete reports whether a LIVE match has clearly finished by wall
// clock and should be pushed through ApplyResult as COMPLETED.
func ShouldAutoComplete(m Match, now time.Time) bool {
	if m.Status != StatusLive {
		return false
	}
	return now.Sub(m.MatchDate) >= AutoCompleteAfter
}
