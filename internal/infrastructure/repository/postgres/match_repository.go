package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/match"
)

const matchColumns = `id, team_a_id, team_b_id, team_a_name, team_b_name,
	team_a_short, team_b_short, match_date, venue, stage, group_name,
	status, score_a, score_b, created_at, updated_at`

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	var row matchTableModel
	err := r.db.GetContext(ctx, &row,
		`SELECT `+matchColumns+` FROM matches WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return match.Match{}, false, nil
	}
	if err != nil {
		return match.Match{}, false, fmt.Errorf("select match by id: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	var rows []matchTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+matchColumns+` FROM matches ORDER BY match_date, id`)
	if err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

// ListByDay returns matches kicking off on the given UTC calendar day.
func (r *MatchRepository) ListByDay(ctx context.Context, day time.Time) ([]match.Match, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var rows []matchTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+matchColumns+` FROM matches
		 WHERE match_date >= $1 AND match_date < $2
		 ORDER BY match_date, id`, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("select matches by day: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE matches
		 SET status = $2, score_a = $3, score_b = $4, updated_at = NOW()
		 WHERE id = $1`,
		m.ID, m.Status, intPtrToNullInt64(m.ScoreA), intPtrToNullInt64(m.ScoreB))
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update match rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("match %s not found", m.ID)
	}
	return nil
}
