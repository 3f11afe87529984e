package user

// User carries the scoring-relevant slice of an account. TotalPoints is the
// sum of PointsEarned over the user's predictions; CurrentRank is recomputed
// by the leaderboard ranker and never settable on its own.
type User struct {
	ID                 string
	Username           string
	IsAdmin            bool
	TotalPoints        int
	CorrectPredictions int
	TotalPredictions   int
	CurrentStreak      int
	LongestStreak      int
	CurrentRank        int
}

// ApplyScore folds one scored prediction into the aggregates. Streaks follow
// result order: a correct pick extends the run, an incorrect one resets it.
func (u *User) ApplyScore(points int, correct bool) {
	u.TotalPoints += points
	if correct {
		u.CorrectPredictions++
		u.CurrentStreak++
		if u.CurrentStreak > u.LongestStreak {
			u.LongestStreak = u.CurrentStreak
		}
	} else {
		u.CurrentStreak = 0
	}
}

// ResetAggregates clears everything the scoring step derives, for a full
// recalculation pass.
func (u *User) ResetAggregates() {
	u.TotalPoints = 0
	u.CorrectPredictions = 0
	u.CurrentStreak = 0
	u.LongestStreak = 0
	u.CurrentRank = 0
}
