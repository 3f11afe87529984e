package postgres

import (
	"database/sql"
	"time"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/match"
)

type matchTableModel struct {
	ID         string        `db:"id"`
	TeamAID    string        `db:"team_a_id"`
	TeamBID    string        `db:"team_b_id"`
	TeamAName  string        `db:"team_a_name"`
	TeamBName  string        `db:"team_b_name"`
	TeamAShort string        `db:"team_a_short"`
	TeamBShort string        `db:"team_b_short"`
	MatchDate  time.Time     `db:"match_date"`
	Venue      string        `db:"venue"`
	Stage      string        `db:"stage"`
	GroupName  string        `db:"group_name"`
	Status     string        `db:"status"`
	ScoreA     sql.NullInt64 `db:"score_a"`
	ScoreB     sql.NullInt64 `db:"score_b"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:         row.ID,
		TeamAID:    row.TeamAID,
		TeamBID:    row.TeamBID,
		TeamAName:  row.TeamAName,
		TeamBName:  row.TeamBName,
		TeamAShort: row.TeamAShort,
		TeamBShort: row.TeamBShort,
		MatchDate:  row.MatchDate.UTC(),
		Venue:      row.Venue,
		Stage:      row.Stage,
		GroupName:  row.GroupName,
		Status:     row.Status,
		ScoreA:     nullInt64ToIntPtr(row.ScoreA),
		ScoreB:     nullInt64ToIntPtr(row.ScoreB),
	}
}

func nullInt64ToIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func intPtrToNullInt64(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
