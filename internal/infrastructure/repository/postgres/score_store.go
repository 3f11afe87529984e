package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/prediction"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/user"
)

// ScoreStore commits a scored prediction and the owner's aggregate change in
// one transaction, so a retried scoring pass never finds the prediction
// marked scored with the user increments missing.
type ScoreStore struct {
	db *sqlx.DB
}

func NewScoreStore(db *sqlx.DB) *ScoreStore {
	return &ScoreStore{db: db}
}

func (s *ScoreStore) CommitScored(ctx context.Context, p prediction.Prediction, applyUser func(*user.User)) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin score commit tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO predictions (id, user_id, match_id, predicted_winner,
		    predicted_score_a, predicted_score_b, points_earned, is_correct,
		    created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (user_id, match_id) DO UPDATE SET
		    predicted_winner  = EXCLUDED.predicted_winner,
		    predicted_score_a = EXCLUDED.predicted_score_a,
		    predicted_score_b = EXCLUDED.predicted_score_b,
		    points_earned     = EXCLUDED.points_earned,
		    is_correct        = EXCLUDED.is_correct,
		    updated_at        = EXCLUDED.updated_at`,
		p.ID, p.UserID, p.MatchID, p.PredictedWinner,
		intPtrToNullInt64(p.PredictedScoreA), intPtrToNullInt64(p.PredictedScoreB),
		p.PointsEarned, boolPtrToNullBool(p.IsCorrect),
		p.CreatedAt.UTC(), p.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("upsert scored prediction: %w", err)
	}

	var row userTableModel
	err = tx.GetContext(ctx, &row,
		`SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, p.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("user %s not found", p.UserID)
	}
	if err != nil {
		return fmt.Errorf("select user for score commit: %w", err)
	}

	u := userFromRow(row)
	applyUser(&u)

	_, err = tx.ExecContext(ctx,
		`UPDATE users
		 SET total_points = $2, correct_predictions = $3, total_predictions = $4,
		     current_streak = $5, longest_streak = $6, current_rank = $7,
		     updated_at = NOW()
		 WHERE id = $1`,
		u.ID, u.TotalPoints, u.CorrectPredictions, u.TotalPredictions,
		u.CurrentStreak, u.LongestStreak, u.CurrentRank)
	if err != nil {
		return fmt.Errorf("update user aggregates: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit score tx: %w", err)
	}
	return nil
}
