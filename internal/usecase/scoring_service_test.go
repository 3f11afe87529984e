package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/match"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/prediction"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/user"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/infrastructure/repository/memory"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/logging"
)

func intPtr(v int) *int { return &v }

func completedMatch(id string, kickoff time.Time, scoreA, scoreB int) match.Match {
	return match.Match{
		ID:        id,
		TeamAName: "Team A " + id,
		TeamBName: "Team B " + id,
		MatchDate: kickoff,
		Status:    match.StatusCompleted,
		ScoreA:    intPtr(scoreA),
		ScoreB:    intPtr(scoreB),
	}
}

func TestScoringService_ScoreMatch(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.December, 21, 19, 0, 0, 0, time.UTC)
	matchRepo := memory.NewMatchRepository([]match.Match{completedMatch("m1", kickoff, 2, 0)})
	already := true
	predictionRepo := memory.NewPredictionRepository([]prediction.Prediction{
		{ID: "p1", UserID: "u1", MatchID: "m1", PredictedWinner: prediction.OutcomeTeamA,
			PredictedScoreA: intPtr(3), PredictedScoreB: intPtr(1)},
		{ID: "p2", UserID: "u2", MatchID: "m1", PredictedWinner: prediction.OutcomeDraw},
		{ID: "p3", UserID: "u3", MatchID: "m1", PredictedWinner: prediction.OutcomeTeamA,
			PointsEarned: 3, IsCorrect: &already},
	})
	userRepo := memory.NewUserRepository([]user.User{
		{ID: "u1"}, {ID: "u2"}, {ID: "u3", TotalPoints: 3},
	})

	svc := NewScoringService(matchRepo, predictionRepo, userRepo,
		memory.NewScoreStore(predictionRepo, userRepo), logging.NewNop())

	processed, err := svc.ScoreMatch(context.Background(), "m1")
	if err != nil {
		t.Fatalf("ScoreMatch: %v", err)
	}
	if processed != 2 {
		t.Fatalf("already scored prediction must be skipped: processed=%d want=2", processed)
	}

	u1, _, _ := userRepo.GetByID(context.Background(), "u1")
	if u1.TotalPoints != 4 || u1.CorrectPredictions != 1 || u1.CurrentStreak != 1 {
		t.Fatalf("unexpected u1 aggregates: %+v", u1)
	}
	u2, _, _ := userRepo.GetByID(context.Background(), "u2")
	if u2.TotalPoints != 0 || u2.CurrentStreak != 0 {
		t.Fatalf("unexpected u2 aggregates: %+v", u2)
	}
	u3, _, _ := userRepo.GetByID(context.Background(), "u3")
	if u3.TotalPoints != 3 {
		t.Fatalf("skipped prediction must not change u3: %+v", u3)
	}

	p1, _, _ := predictionRepo.GetByID(context.Background(), "p1")
	if p1.PointsEarned != 4 || p1.IsCorrect == nil || !*p1.IsCorrect {
		t.Fatalf("unexpected p1 after scoring: %+v", p1)
	}
}

type flakyCommitter struct {
	inner    ScoreCommitter
	failures int
}

func (c *flakyCommitter) CommitScored(ctx context.Context, p prediction.Prediction, applyUser func(*user.User)) error {
	if c.failures > 0 {
		c.failures--
		return errors.New("connection reset")
	}
	return c.inner.CommitScored(ctx, p, applyUser)
}

func TestScoringService_ScoreMatch_FailedCommitIsRetryable(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.December, 21, 19, 0, 0, 0, time.UTC)
	matchRepo := memory.NewMatchRepository([]match.Match{completedMatch("m1", kickoff, 2, 0)})
	predictionRepo := memory.NewPredictionRepository([]prediction.Prediction{
		{ID: "p1", UserID: "u1", MatchID: "m1", PredictedWinner: prediction.OutcomeTeamA},
	})
	userRepo := memory.NewUserRepository([]user.User{{ID: "u1"}})
	committer := &flakyCommitter{inner: memory.NewScoreStore(predictionRepo, userRepo), failures: 1}
	svc := NewScoringService(matchRepo, predictionRepo, userRepo, committer, logging.NewNop())

	if _, err := svc.ScoreMatch(context.Background(), "m1"); err == nil {
		t.Fatalf("first pass must surface the commit failure")
	}
	stored, _, _ := predictionRepo.GetByID(context.Background(), "p1")
	if stored.IsCorrect != nil {
		t.Fatalf("failed commit must leave the prediction unscored: %+v", stored)
	}

	processed, err := svc.ScoreMatch(context.Background(), "m1")
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if processed != 1 {
		t.Fatalf("retry must pick the prediction back up: processed=%d want=1", processed)
	}
	u1, _, _ := userRepo.GetByID(context.Background(), "u1")
	if u1.TotalPoints != 3 || u1.CorrectPredictions != 1 {
		t.Fatalf("retried commit must land the user increments: %+v", u1)
	}
	stored, _, _ = predictionRepo.GetByID(context.Background(), "p1")
	if stored.IsCorrect == nil || !*stored.IsCorrect || stored.PointsEarned != 3 {
		t.Fatalf("retried commit must land the prediction: %+v", stored)
	}
}

func TestScoringService_ScoreMatch_Guards(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.December, 21, 19, 0, 0, 0, time.UTC)
	liveNoScore := match.Match{ID: "m-live", MatchDate: kickoff, Status: match.StatusLive}
	completedNoScore := match.Match{ID: "m-done", MatchDate: kickoff, Status: match.StatusCompleted}
	matchRepo := memory.NewMatchRepository([]match.Match{liveNoScore, completedNoScore})
	predictionRepo := memory.NewPredictionRepository(nil)
	userRepo := memory.NewUserRepository(nil)
	svc := NewScoringService(matchRepo, predictionRepo, userRepo,
		memory.NewScoreStore(predictionRepo, userRepo), logging.NewNop())

	if _, err := svc.ScoreMatch(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
	if _, err := svc.ScoreMatch(context.Background(), "m-live"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-completed match, got=%v", err)
	}
	if _, err := svc.ScoreMatch(context.Background(), "m-done"); !errors.Is(err, ErrScoresMissing) {
		t.Fatalf("expected ErrScoresMissing, got=%v", err)
	}
}

func TestScoringService_RecalculateAll_ReplaysInKickoffOrder(t *testing.T) {
	t.Parallel()

	day1 := time.Date(2025, time.December, 21, 19, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)
	day3 := day1.Add(48 * time.Hour)
	matchRepo := memory.NewMatchRepository([]match.Match{
		completedMatch("m3", day3, 1, 1),
		completedMatch("m1", day1, 2, 0),
		completedMatch("m2", day2, 0, 1),
	})

	// u1 hits m1 and m3 but misses m2, so the replay must land on a current
	// streak of 1 and a longest streak of 1, not 2.
	wrong := false
	predictionRepo := memory.NewPredictionRepository([]prediction.Prediction{
		{ID: "p1", UserID: "u1", MatchID: "m1", PredictedWinner: prediction.OutcomeTeamA},
		{ID: "p2", UserID: "u1", MatchID: "m2", PredictedWinner: prediction.OutcomeTeamA,
			PointsEarned: 99, IsCorrect: &wrong},
		{ID: "p3", UserID: "u1", MatchID: "m3", PredictedWinner: prediction.OutcomeDraw},
	})
	userRepo := memory.NewUserRepository([]user.User{
		{ID: "u1", TotalPoints: 99, CorrectPredictions: 9, CurrentStreak: 9, LongestStreak: 9, TotalPredictions: 3},
	})

	svc := NewScoringService(matchRepo, predictionRepo, userRepo,
		memory.NewScoreStore(predictionRepo, userRepo), logging.NewNop())

	processed, err := svc.RecalculateAll(context.Background())
	if err != nil {
		t.Fatalf("RecalculateAll: %v", err)
	}
	if processed != 3 {
		t.Fatalf("unexpected processed count: got=%d want=3", processed)
	}

	u1, _, _ := userRepo.GetByID(context.Background(), "u1")
	if u1.TotalPoints != 6 {
		t.Fatalf("unexpected total points: got=%d want=6", u1.TotalPoints)
	}
	if u1.CorrectPredictions != 2 {
		t.Fatalf("unexpected correct count: got=%d want=2", u1.CorrectPredictions)
	}
	if u1.CurrentStreak != 1 || u1.LongestStreak != 1 {
		t.Fatalf("streaks must replay in kickoff order: current=%d longest=%d want=1/1",
			u1.CurrentStreak, u1.LongestStreak)
	}
	if u1.TotalPredictions != 3 {
		t.Fatalf("total predictions must survive the recalculation: got=%d", u1.TotalPredictions)
	}

	p2, _, _ := predictionRepo.GetByID(context.Background(), "p2")
	if p2.PointsEarned != 0 || p2.IsCorrect == nil || *p2.IsCorrect {
		t.Fatalf("stale prediction must be rescored: %+v", p2)
	}
}
