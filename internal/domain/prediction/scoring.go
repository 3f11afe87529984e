package prediction

const (
	basePoints  = 3
	bonusPoints = 1
)

// Outcome derives the winner vocabulary value from a final score.
func Outcome(scoreA, scoreB int) string {
	switch {
	case scoreA > scoreB:
		return OutcomeTeamA
	case scoreA < scoreB:
		return OutcomeTeamB
	default:
		return OutcomeDraw
	}
}

// Score awards points for a prediction against the frozen final score.
// Correct winner earns 3; when both predicted scores are present and the
// predicted goal difference equals the actual one, a +1 bonus applies. The
// bonus rewards matching margin, not the exact scoreline: 3-1 against an
// actual 2-0 still earns it. Output is always one of 0, 3, 4.
func Score(p Prediction, actualScoreA, actualScoreB int) (points int, correct bool) {
	if NormalizeWinner(p.PredictedWinner) != Outcome(actualScoreA, actualScoreB) {
		return 0, false
	}

	points = basePoints
	if p.HasScorePair() {
		predictedDiff := *p.PredictedScoreA - *p.PredictedScoreB
		actualDiff := actualScoreA - actualScoreB
		if predictedDiff == actualDiff {
			points += bonusPoints
		}
	}

	return points, true
}
