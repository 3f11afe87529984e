package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the tournament teams, schedule, and demo accounts into
// an empty database. A database that already has teams is left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (id, name, short_name, country, group_name, flag_url)
VALUES (:id, :name, :short_name, :country, :group_name, :flag_url)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":         t.ID,
			"name":       t.Name,
			"short_name": t.ShortName,
			"country":    t.Country,
			"group_name": t.Group,
			"flag_url":   t.FlagURL,
		})
		if err != nil {
			return fmt.Errorf("bind seed team %s query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
	}

	for _, m := range memory.SeedMatches() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO matches (id, team_a_id, team_b_id, team_a_name, team_b_name,
	team_a_short, team_b_short, match_date, venue, stage, group_name, status)
VALUES (:id, :team_a_id, :team_b_id, :team_a_name, :team_b_name,
	:team_a_short, :team_b_short, :match_date, :venue, :stage, :group_name, :status)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":           m.ID,
			"team_a_id":    m.TeamAID,
			"team_b_id":    m.TeamBID,
			"team_a_name":  m.TeamAName,
			"team_b_name":  m.TeamBName,
			"team_a_short": m.TeamAShort,
			"team_b_short": m.TeamBShort,
			"match_date":   m.MatchDate.UTC(),
			"venue":        m.Venue,
			"stage":        m.Stage,
			"group_name":   m.GroupName,
			"status":       m.Status,
		})
		if err != nil {
			return fmt.Errorf("bind seed match %s query: %w", m.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed match %s: %w", m.ID, err)
		}
	}

	for _, u := range memory.SeedUsers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO users (id, username, is_admin)
VALUES (:id, :username, :is_admin)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":       u.ID,
			"username": u.Username,
			"is_admin": u.IsAdmin,
		})
		if err != nil {
			return fmt.Errorf("bind seed user %s query: %w", u.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
