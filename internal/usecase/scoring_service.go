package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/match"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/prediction"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/user"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/logging"
)

const recalcWorkerCount = 8

// ScoreCommitter persists one scored prediction together with the owner's
// aggregate change. Implementations commit the pair atomically: either the
// prediction row and the user increments both land, or neither does.
type ScoreCommitter interface {
	CommitScored(ctx context.Context, p prediction.Prediction, applyUser func(*user.User)) error
}

// ScoringService turns completed matches into prediction points and user
// aggregate updates. It is only ever invoked through the state machine's
// just-completed hook, an admin calculate call, or a full recalculation.
type ScoringService struct {
	matchRepo      match.Repository
	predictionRepo prediction.Repository
	userRepo       user.Repository
	scores         ScoreCommitter
	logger         *logging.Logger
}

func NewScoringService(
	matchRepo match.Repository,
	predictionRepo prediction.Repository,
	userRepo user.Repository,
	scores ScoreCommitter,
	logger *logging.Logger,
) *ScoringService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoringService{
		matchRepo:      matchRepo,
		predictionRepo: predictionRepo,
		userRepo:       userRepo,
		scores:         scores,
		logger:         logger,
	}
}

// ScoreMatch scores every prediction attached to a completed match and folds
// the results into the owning users. Predictions already scored are skipped,
// so a retried invocation cannot double-award. Returns the number of
// predictions processed.
func (s *ScoringService) ScoreMatch(ctx context.Context, matchID string) (int, error) {
	m, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return 0, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return 0, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	if m.Status != match.StatusCompleted {
		return 0, fmt.Errorf("%w: match=%s status=%s", ErrInvalidInput, matchID, m.Status)
	}
	if !m.HasFinalScore() {
		return 0, fmt.Errorf("%w: match=%s", ErrScoresMissing, matchID)
	}

	predictions, err := s.predictionRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return 0, fmt.Errorf("list predictions for match=%s: %w", matchID, err)
	}

	processed := 0
	for _, p := range predictions {
		if p.IsCorrect != nil {
			continue
		}
		if err := s.applyOne(ctx, p, *m.ScoreA, *m.ScoreB); err != nil {
			return processed, fmt.Errorf("score prediction=%s: %w", p.ID, err)
		}
		processed++
	}

	s.logger.InfoContext(ctx, "match scored",
		"match", m.Label(),
		"score_a", *m.ScoreA,
		"score_b", *m.ScoreB,
		"predictions", processed,
	)
	return processed, nil
}

// applyOne commits one scored prediction and its user increments as a unit.
// A failed commit leaves the prediction unscored, so a retried ScoreMatch
// picks it up again instead of skipping it with the points lost.
func (s *ScoringService) applyOne(ctx context.Context, p prediction.Prediction, scoreA, scoreB int) error {
	points, correct := prediction.Score(p, scoreA, scoreB)

	p.PointsEarned = points
	isCorrect := correct
	p.IsCorrect = &isCorrect
	p.UpdatedAt = time.Now().UTC()
	if err := s.scores.CommitScored(ctx, p, func(u *user.User) {
		u.ApplyScore(points, correct)
	}); err != nil {
		return fmt.Errorf("commit scored prediction: %w", err)
	}

	return nil
}

type scoredPrediction struct {
	p       prediction.Prediction
	points  int
	correct bool
}

type recalcBatch struct {
	matchIndex int
	scored     []scoredPrediction
}

// RecalculateAll wipes every derived aggregate and re-scores every completed
// match from scratch, in kickoff order so streaks come out the same as if
// matches had been scored as they finished. Per-match point computation is
// pure and fans out over a worker pool; the write phase stays serial.
func (s *ScoringService) RecalculateAll(ctx context.Context) (int, error) {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list matches: %w", err)
	}

	completed := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.Status != match.StatusCompleted {
			continue
		}
		if !m.HasFinalScore() {
			s.logger.WarnContext(ctx, "skip completed match without final score", "match", m.Label())
			continue
		}
		completed = append(completed, m)
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].MatchDate.Before(completed[j].MatchDate)
	})

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}
	for _, u := range users {
		if err := s.userRepo.UpdateFunc(ctx, u.ID, func(u *user.User) {
			u.ResetAggregates()
		}); err != nil {
			return 0, fmt.Errorf("reset user=%s: %w", u.ID, err)
		}
	}

	batches := make([]recalcBatch, len(completed))
	pool, err := ants.NewPool(recalcWorkerCount)
	if err != nil {
		return 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		workers  sync.WaitGroup
		firstErr error
		errOnce  sync.Once
	)
	for i, m := range completed {
		i, m := i, m
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			predictions, listErr := s.predictionRepo.ListByMatch(ctx, m.ID)
			if listErr != nil {
				errOnce.Do(func() { firstErr = fmt.Errorf("list predictions for match=%s: %w", m.ID, listErr) })
				return
			}

			scored := make([]scoredPrediction, 0, len(predictions))
			for _, p := range predictions {
				points, correct := prediction.Score(p, *m.ScoreA, *m.ScoreB)
				scored = append(scored, scoredPrediction{p: p, points: points, correct: correct})
			}
			batches[i] = recalcBatch{matchIndex: i, scored: scored}
		}); err != nil {
			workers.Done()
			return 0, fmt.Errorf("submit match to worker pool: %w", err)
		}
	}
	workers.Wait()
	if firstErr != nil {
		return 0, firstErr
	}

	processed := 0
	for _, batch := range batches {
		for _, item := range batch.scored {
			p := item.p
			p.PointsEarned = item.points
			isCorrect := item.correct
			p.IsCorrect = &isCorrect
			p.UpdatedAt = time.Now().UTC()
			if err := s.scores.CommitScored(ctx, p, func(u *user.User) {
				u.ApplyScore(item.points, item.correct)
			}); err != nil {
				return processed, fmt.Errorf("commit scored prediction=%s: %w", p.ID, err)
			}
			processed++
		}
	}

	s.logger.InfoContext(ctx, "full recalculation finished",
		"matches", len(completed),
		"predictions", processed,
	)
	return processed, nil
}
