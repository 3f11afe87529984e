package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/match"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/logging"
)

// MatchView is a match enriched with the estimated clock label, which only
// carries meaning while the match is LIVE.
type MatchView struct {
	match.Match
	Minute string
}

// MatchService reads the schedule and applies the watchdog completion for
// fixtures the feed stopped updating.
type MatchService struct {
	matchRepo   match.Repository
	scoring     *ScoringService
	leaderboard *LeaderboardService
	autoEnabled bool
	logger      *logging.Logger
	now         func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	scoring *ScoringService,
	leaderboard *LeaderboardService,
	autoCompleteEnabled bool,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		matchRepo:   matchRepo,
		scoring:     scoring,
		leaderboard: leaderboard,
		autoEnabled: autoCompleteEnabled,
		logger:      logger,
		now:         time.Now,
	}
}

// List returns the schedule in kickoff order, optionally filtered by status
// and group stage letter.
func (s *MatchService) List(ctx context.Context, status, group string) ([]MatchView, error) {
	if status != "" {
		status = match.NormalizeStatus(status)
		if !match.IsValidStatus(status) {
			return nil, fmt.Errorf("%w: status %q", ErrInvalidInput, status)
		}
	}
	group = strings.ToUpper(strings.TrimSpace(group))

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	now := s.now().UTC()
	views := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		if status != "" && m.Status != status {
			continue
		}
		if group != "" && !strings.EqualFold(m.GroupName, group) {
			continue
		}
		views = append(views, s.view(m, now))
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].MatchDate.Before(views[j].MatchDate)
	})
	return views, nil
}

// Get returns one match with its live clock estimate.
func (s *MatchService) Get(ctx context.Context, matchID string) (MatchView, error) {
	if matchID == "" {
		return MatchView{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	m, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchView{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return MatchView{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return s.view(m, s.now().UTC()), nil
}

// AutoComplete force-finishes a LIVE match that has run far past regulation,
// covering the case where the feed dies mid-match. The match must already
// carry scores; the last seen live score becomes final.
func (s *MatchService) AutoComplete(ctx context.Context, matchID string) (MatchView, error) {
	if !s.autoEnabled {
		return MatchView{}, fmt.Errorf("%w: auto-complete is disabled", ErrInvalidInput)
	}
	if matchID == "" {
		return MatchView{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchView{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return MatchView{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	now := s.now().UTC()
	if !match.ShouldAutoComplete(m, now) {
		return MatchView{}, fmt.Errorf("%w: match=%s status=%s", ErrInvalidInput, m.ID, m.Status)
	}
	if m.ScoreA == nil || m.ScoreB == nil {
		return MatchView{}, fmt.Errorf("%w: match=%s", ErrScoresMissing, m.ID)
	}

	justCompleted := match.ApplyResult(&m, match.StatusCompleted, *m.ScoreA, *m.ScoreB)
	if err := s.matchRepo.Update(ctx, m); err != nil {
		return MatchView{}, fmt.Errorf("update match: %w", err)
	}
	s.logger.InfoContext(ctx, "match auto-completed",
		"match", m.Label(),
		"score_a", *m.ScoreA,
		"score_b", *m.ScoreB,
	)

	if justCompleted {
		if _, err := s.scoring.ScoreMatch(ctx, m.ID); err != nil {
			return MatchView{}, fmt.Errorf("score auto-completed match: %w", err)
		}
		if err := s.leaderboard.RecomputeRanks(ctx); err != nil {
			return MatchView{}, fmt.Errorf("recompute ranks: %w", err)
		}
	}
	return s.view(m, now), nil
}

func (s *MatchService) view(m match.Match, now time.Time) MatchView {
	v := MatchView{Match: m}
	switch m.Status {
	case match.StatusLive:
		v.Minute = match.EstimateMinute(m.MatchDate, now)
	case match.StatusCompleted:
		v.Minute = match.MinuteFulltime
	}
	return v
}
