package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/prediction"
)

const predictionColumns = `id, user_id, match_id, predicted_winner,
	predicted_score_a, predicted_score_b, points_earned, is_correct,
	created_at, updated_at`

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) GetByID(ctx context.Context, id string) (prediction.Prediction, bool, error) {
	var row predictionTableModel
	err := r.db.GetContext(ctx, &row,
		`SELECT `+predictionColumns+` FROM predictions WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return prediction.Prediction{}, false, nil
	}
	if err != nil {
		return prediction.Prediction{}, false, fmt.Errorf("select prediction by id: %w", err)
	}
	return predictionFromRow(row), true, nil
}

func (r *PredictionRepository) GetByUserAndMatch(ctx context.Context, userID, matchID string) (prediction.Prediction, bool, error) {
	var row predictionTableModel
	err := r.db.GetContext(ctx, &row,
		`SELECT `+predictionColumns+` FROM predictions
		 WHERE user_id = $1 AND match_id = $2`, userID, matchID)
	if errors.Is(err, sql.ErrNoRows) {
		return prediction.Prediction{}, false, nil
	}
	if err != nil {
		return prediction.Prediction{}, false, fmt.Errorf("select prediction by user and match: %w", err)
	}
	return predictionFromRow(row), true, nil
}

func (r *PredictionRepository) ListByMatch(ctx context.Context, matchID string) ([]prediction.Prediction, error) {
	var rows []predictionTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+predictionColumns+` FROM predictions
		 WHERE match_id = $1 ORDER BY id`, matchID)
	if err != nil {
		return nil, fmt.Errorf("select predictions by match: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, predictionFromRow(row))
	}
	return out, nil
}

func (r *PredictionRepository) ListByUser(ctx context.Context, userID string) ([]prediction.Prediction, error) {
	var rows []predictionTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+predictionColumns+` FROM predictions
		 WHERE user_id = $1 ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("select predictions by user: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, predictionFromRow(row))
	}
	return out, nil
}

func (r *PredictionRepository) Upsert(ctx context.Context, p prediction.Prediction) error {
	_, err := r.db.ExecContext(ctx,
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
		return fmt.Errorf("upsert prediction: %w", err)
	}
	return nil
}

func (r *PredictionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM predictions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete prediction: %w", err)
	}
	return nil
}
