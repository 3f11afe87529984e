package postgres

import (
	"database/sql"
	"time"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/prediction"
)

type predictionTableModel struct {
	ID              string        `db:"id"`
	UserID          string        `db:"user_id"`
	MatchID         string        `db:"match_id"`
	PredictedWinner string        `db:"predicted_winner"`
	PredictedScoreA sql.NullInt64 `db:"predicted_score_a"`
	PredictedScoreB sql.NullInt64 `db:"predicted_score_b"`
	PointsEarned    int           `db:"points_earned"`
	IsCorrect       sql.NullBool  `db:"is_correct"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

func predictionFromRow(row predictionTableModel) prediction.Prediction {
	return prediction.Prediction{
		ID:              row.ID,
		UserID:          row.UserID,
		MatchID:         row.MatchID,
		PredictedWinner: row.PredictedWinner,
		PredictedScoreA: nullInt64ToIntPtr(row.PredictedScoreA),
		PredictedScoreB: nullInt64ToIntPtr(row.PredictedScoreB),
		PointsEarned:    row.PointsEarned,
		IsCorrect:       nullBoolToBoolPtr(row.IsCorrect),
		CreatedAt:       row.CreatedAt.UTC(),
		UpdatedAt:       row.UpdatedAt.UTC(),
	}
}

func nullBoolToBoolPtr(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Bool
	return &b
}

func boolPtrToNullBool(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *v, Valid: true}
}
