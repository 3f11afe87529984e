package prediction

import (
	"strings"
	"time"
)

const (
	OutcomeTeamA = "TEAM_A"
	OutcomeTeamB = "TEAM_B"
	OutcomeDraw  = "DRAW"
)

const (
	// MaxPredictedScore bounds each predicted score.
	MaxPredictedScore = 20
)

// Prediction is one user's guess for one match. PredictedScoreA/B are
// both-or-neither; PointsEarned and IsCorrect stay zero-valued until the
// owning match completes and the scoring step writes them.
type Prediction struct {
	ID              string
	UserID          string
	MatchID         string
	PredictedWinner string
	PredictedScoreA *int
	PredictedScoreB *int
	PointsEarned    int
	IsCorrect       *bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NormalizeWinner(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func IsValidWinner(value string) bool {
	switch NormalizeWinner(value) {
	case OutcomeTeamA, OutcomeTeamB, OutcomeDraw:
		return true
	default:
		return false
	}
}

// HasScorePair reports whether both predicted scores are present.
func (p Prediction) HasScorePair() bool {
	return p.PredictedScoreA != nil && p.PredictedScoreB != nil
}
