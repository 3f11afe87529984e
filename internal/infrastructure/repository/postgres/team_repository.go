package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (team.Team, bool, error) {
	var row teamTableModel
	err := r.db.GetContext(ctx, &row,
		`SELECT id, name, short_name, country, group_name, flag_url, created_at, updated_at
		 FROM teams WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return team.Team{}, false, nil
	}
	if err != nil {
		return team.Team{}, false, fmt.Errorf("select team by id: %w", err)
	}
	return teamFromRow(row), true, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	var rows []teamTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, name, short_name, country, group_name, flag_url, created_at, updated_at
		 FROM teams ORDER BY group_name, name`)
	if err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:        row.ID,
		Name:      row.Name,
		ShortName: row.ShortName,
		Country:   row.Country,
		Group:     row.GroupName,
		FlagURL:   row.FlagURL,
	}
}
