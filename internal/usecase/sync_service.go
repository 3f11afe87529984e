package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/match"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/logging"
)

// Sync modes select which slice of the upstream schedule one run covers.
const (
	SyncModeLive  = "live"
	SyncModeToday = "today"
	SyncModeAll   = "all"
)

// SyncResult summarizes one reconciliation run. Errors holds soft per-fixture
// failures; the run keeps going past them.
type SyncResult struct {
	Mode             string    `json:"mode"`
	MatchesChecked   int       `json:"matchesChecked"`
	MatchesUpdated   int       `json:"matchesUpdated"`
	PointsCalculated []string  `json:"pointsCalculated"`
	Errors           []string  `json:"errors,omitempty"`
	Usage            FeedUsage `json:"usage"`
}

// SyncService reconciles stored matches against the upstream feed. Runs are
// serialized: a second caller gets ErrSyncInProgress instead of a second
// concurrent pass over the same fixtures.
type SyncService struct {
	feed        FeedClient
	matchRepo   match.Repository
	matcher     FixtureMatcher
	scoring     *ScoringService
	leaderboard *LeaderboardService
	logger      *logging.Logger
	now         func() time.Time

	mu      sync.Mutex
	running bool
}

// ErrSyncInProgress means another reconciliation run holds the sync slot.
var ErrSyncInProgress = errors.New("sync already in progress")

func NewSyncService(
	feed FeedClient,
	matchRepo match.Repository,
	matcher FixtureMatcher,
	scoring *ScoringService,
	leaderboard *LeaderboardService,
	logger *logging.Logger,
) *SyncService {
	if matcher == nil {
		matcher = NewTeamNameMatcher()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SyncService{
		feed:        feed,
		matchRepo:   matchRepo,
		matcher:     matcher,
		scoring:     scoring,
		leaderboard: leaderboard,
		logger:      logger,
		now:         time.Now,
	}
}

// Run executes one reconciliation pass in the given mode.
func (s *SyncService) Run(ctx context.Context, mode string) (SyncResult, error) {
	release, err := s.acquire()
	if err != nil {
		return SyncResult{}, err
	}
	defer release()

	return s.run(ctx, mode)
}

// RunScheduled is the recurring entry point: it reconciles live fixtures, and
// when nothing is live it falls back to today's schedule so upcoming kickoffs
// flip to LIVE without waiting for a manual sync.
func (s *SyncService) RunScheduled(ctx context.Context) (SyncResult, error) {
	release, err := s.acquire()
	if err != nil {
		return SyncResult{}, err
	}
	defer release()

	result, err := s.run(ctx, SyncModeLive)
	if err != nil {
		return result, err
	}
	if result.MatchesChecked > 0 {
		return result, nil
	}

	s.logger.DebugContext(ctx, "no live fixtures, falling back to today's schedule")
	return s.run(ctx, SyncModeToday)
}

func (s *SyncService) acquire() (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil, ErrSyncInProgress
	}
	s.running = true
	return func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}, nil
}

func (s *SyncService) run(ctx context.Context, mode string) (SyncResult, error) {
	result := SyncResult{
		Mode:             mode,
		PointsCalculated: []string{},
	}

	var (
		fixtures []ExternalFixture
		err      error
	)
	switch mode {
	case SyncModeLive:
		fixtures, err = s.feed.FetchLiveFixtures(ctx)
	case SyncModeToday:
		fixtures, err = s.feed.FetchFixturesByDate(ctx, s.now().UTC())
	case SyncModeAll:
		fixtures, err = s.feed.FetchAllFixtures(ctx)
	default:
		return result, fmt.Errorf("%w: sync mode %q", ErrInvalidInput, mode)
	}
	result.Usage = s.feed.Usage()
	if err != nil {
		if errors.Is(err, ErrBudgetExhausted) {
			return result, fmt.Errorf("%w: %v", ErrBudgetExhausted, err)
		}
		return result, fmt.Errorf("fetch fixtures (%s): %w", mode, err)
	}

	completions := 0
	for _, fixture := range fixtures {
		result.MatchesChecked++

		updated, scoredLabel, fixErr := s.reconcileFixture(ctx, fixture)
		if fixErr != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s vs %s: %v", fixture.HomeTeamName, fixture.AwayTeamName, fixErr))
			continue
		}
		if updated {
			result.MatchesUpdated++
		}
		if scoredLabel != "" {
			result.PointsCalculated = append(result.PointsCalculated, scoredLabel)
			completions++
		}
	}

	if completions > 0 {
		if err := s.leaderboard.RecomputeRanks(ctx); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("recompute ranks: %v", err))
		}
	}

	result.Usage = s.feed.Usage()
	s.logger.InfoContext(ctx, "sync finished",
		"mode", mode,
		"checked", result.MatchesChecked,
		"updated", result.MatchesUpdated,
		"completed", completions,
		"errors", len(result.Errors),
		"budget_remaining", result.Usage.Remaining,
	)
	return result, nil
}

// reconcileFixture folds one upstream fixture into the stored match it names.
// Returns whether the stored match changed and, when the fixture finished the
// match, the match label for the run summary.
func (s *SyncService) reconcileFixture(ctx context.Context, fixture ExternalFixture) (bool, string, error) {
	candidates, err := s.matchRepo.ListByDay(ctx, fixture.Date)
	if err != nil {
		return false, "", fmt.Errorf("list matches for day: %w", err)
	}
	m, found := s.matcher.Match(fixture, candidates)
	if !found {
		return false, "", fmt.Errorf("no stored match for fixture")
	}
	if m.Status == match.StatusCompleted {
		return false, "", nil
	}

	newStatus := fixture.Status
	if newStatus == "" {
		newStatus = match.NormalizeStatus(fixture.StatusCode)
	}

	// The state machine refuses to pull a live match backwards; skip early so
	// the fixture is not counted as an update.
	if m.Status == match.StatusLive && newStatus != match.StatusLive && newStatus != match.StatusCompleted {
		return false, "", nil
	}

	// A fixture reported finished without both goals cannot produce a final
	// score, so it stays in its current state until the feed fills them in.
	if newStatus == match.StatusCompleted && (fixture.GoalsHome == nil || fixture.GoalsAway == nil) {
		return false, "", fmt.Errorf("%w: completed fixture without goals", ErrScoresMissing)
	}

	scoreA, scoreB := 0, 0
	if fixture.GoalsHome != nil {
		scoreA = *fixture.GoalsHome
	}
	if fixture.GoalsAway != nil {
		scoreB = *fixture.GoalsAway
	}

	if !s.matchChanged(m, newStatus, scoreA, scoreB) {
		return false, "", nil
	}

	justCompleted := match.ApplyResult(&m, newStatus, scoreA, scoreB)
	if err := s.matchRepo.Update(ctx, m); err != nil {
		return false, "", fmt.Errorf("update match: %w", err)
	}

	if !justCompleted {
		return true, "", nil
	}
	if _, err := s.scoring.ScoreMatch(ctx, m.ID); err != nil {
		return true, "", fmt.Errorf("score completed match: %w", err)
	}
	return true, m.Label(), nil
}

func (s *SyncService) matchChanged(m match.Match, newStatus string, scoreA, scoreB int) bool {
	if m.Status != newStatus {
		return true
	}
	if newStatus != match.StatusLive && newStatus != match.StatusCompleted {
		return false
	}
	return m.ScoreA == nil || m.ScoreB == nil || *m.ScoreA != scoreA || *m.ScoreB != scoreB
}
