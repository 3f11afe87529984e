package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/user"
)

const userColumns = `id, username, is_admin, total_points, correct_predictions,
	total_predictions, current_streak, longest_streak, current_rank,
	created_at, updated_at`

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, bool, error) {
	var row userTableModel
	err := r.db.GetContext(ctx, &row,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, false, nil
	}
	if err != nil {
		return user.User{}, false, fmt.Errorf("select user by id: %w", err)
	}
	return userFromRow(row), true, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	var rows []userTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, userFromRow(row))
	}
	return out, nil
}

// UpdateFunc applies fn inside a transaction holding a row lock, so two
// concurrent score applications for the same user serialize instead of
// overwriting each other.
func (r *UserRepository) UpdateFunc(ctx context.Context, id string, fn func(*user.User)) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin user update tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var row userTableModel
	err = tx.GetContext(ctx, &row,
		`SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("user %s not found", id)
	}
	if err != nil {
		return fmt.Errorf("select user for update: %w", err)
	}

	u := userFromRow(row)
	fn(&u)

	_, err = tx.ExecContext(ctx,
		`UPDATE users
		 SET total_points = $2, correct_predictions = $3, total_predictions = $4,
		     current_streak = $5, longest_streak = $6, current_rank = $7,
		     updated_at = NOW()
		 WHERE id = $1`,
		u.ID, u.TotalPoints, u.CorrectPredictions, u.TotalPredictions,
		u.CurrentStreak, u.LongestStreak, u.CurrentRank)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit user update tx: %w", err)
	}
	return nil
}
