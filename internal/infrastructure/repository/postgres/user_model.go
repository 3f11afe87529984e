package postgres

import (
	"time"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/user"
)

type userTableModel struct {
	ID                 string    `db:"id"`
	Username           string    `db:"username"`
	IsAdmin            bool      `db:"is_admin"`
	TotalPoints        int       `db:"total_points"`
	CorrectPredictions int       `db:"correct_predictions"`
	TotalPredictions   int       `db:"total_predictions"`
	CurrentStreak      int       `db:"current_streak"`
	LongestStreak      int       `db:"longest_streak"`
	CurrentRank        int       `db:"current_rank"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:                 row.ID,
		Username:           row.Username,
		IsAdmin:            row.IsAdmin,
		TotalPoints:        row.TotalPoints,
		CorrectPredictions: row.CorrectPredictions,
		TotalPredictions:   row.TotalPredictions,
		CurrentStreak:      row.CurrentStreak,
		LongestStreak:      row.LongestStreak,
		CurrentRank:        row.CurrentRank,
	}
}
