package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/team"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/logging"
)

// TeamService serves the tournament squad list.
type TeamService struct {
	teamRepo team.Repository
	logger   *logging.Logger
}

func NewTeamService(teamRepo team.Repository, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

// List returns every team ordered by group letter and then name.
func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	sort.Slice(teams, func(i, j int) bool {
		if teams[i].Group != teams[j].Group {
			return teams[i].Group < teams[j].Group
		}
		return teams[i].Name < teams[j].Name
	})

	return teams, nil
}

// Get returns one team by its identifier.
func (s *TeamService) Get(ctx context.Context, teamID string) (team.Team, error) {
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, ok, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team %s: %w", teamID, err)
	}
	if !ok {
		return team.Team{}, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}

	return t, nil
}
