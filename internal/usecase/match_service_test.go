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

func newMatchFixture(t *testing.T, matches []match.Match, predictions []prediction.Prediction, users []user.User) (*MatchService, *memory.MatchRepository, *memory.UserRepository) {
	t.Helper()
	matchRepo := memory.NewMatchRepository(matches)
	predictionRepo := memory.NewPredictionRepository(predictions)
	userRepo := memory.NewUserRepository(users)
	scoring := NewScoringService(matchRepo, predictionRepo, userRepo,
		memory.NewScoreStore(predictionRepo, userRepo), logging.NewNop())
	leaderboard := NewLeaderboardService(userRepo, nil, logging.NewNop())
	svc := NewMatchService(matchRepo, scoring, leaderboard, true, logging.NewNop())
	return svc, matchRepo, userRepo
}

func TestMatchService_List_FiltersAndSorts(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, time.December, 21, 0, 0, 0, 0, time.UTC)
	svc, _, _ := newMatchFixture(t, []match.Match{
		{ID: "m2", MatchDate: day.Add(22 * time.Hour), Status: match.StatusUpcoming, GroupName: "A"},
		{ID: "m1", MatchDate: day.Add(19 * time.Hour), Status: match.StatusUpcoming, GroupName: "A"},
		{ID: "m3", MatchDate: day.Add(20 * time.Hour), Status: match.StatusCompleted, GroupName: "B",
			ScoreA: intPtr(1), ScoreB: intPtr(0)},
	}, nil, nil)

	views, err := svc.List(context.Background(), "", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("unexpected count: got=%d want=3", len(views))
	}
	if views[0].ID != "m1" || views[1].ID != "m3" || views[2].ID != "m2" {
		t.Fatalf("schedule must sort by kickoff: %s, %s, %s", views[0].ID, views[1].ID, views[2].ID)
	}
	if views[1].Minute != match.MinuteFulltime {
		t.Fatalf("completed match must show FT: got=%q", views[1].Minute)
	}

	groupA, err := svc.List(context.Background(), "upcoming", "a")
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(groupA) != 2 {
		t.Fatalf("unexpected filtered count: got=%d want=2", len(groupA))
	}

	if _, err := svc.List(context.Background(), "BOGUS", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("invalid status filter must fail: got=%v", err)
	}
}

func TestMatchService_AutoComplete(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.December, 21, 19, 0, 0, 0, time.UTC)
	svc, matchRepo, userRepo := newMatchFixture(t,
		[]match.Match{{
			ID: "m1", TeamAName: "Morocco", TeamBName: "Comoros",
			MatchDate: kickoff, Status: match.StatusLive,
			ScoreA: intPtr(2), ScoreB: intPtr(1),
		}},
		[]prediction.Prediction{{
			ID: "p1", UserID: "u1", MatchID: "m1", PredictedWinner: prediction.OutcomeTeamA,
		}},
		[]user.User{{ID: "u1"}},
	)
	svc.now = func() time.Time { return kickoff.Add(3 * time.Hour) }

	view, err := svc.AutoComplete(context.Background(), "m1")
	if err != nil {
		t.Fatalf("AutoComplete: %v", err)
	}
	if view.Status != match.StatusCompleted {
		t.Fatalf("unexpected status: got=%s", view.Status)
	}

	stored, _, _ := matchRepo.GetByID(context.Background(), "m1")
	if stored.Status != match.StatusCompleted || *stored.ScoreA != 2 || *stored.ScoreB != 1 {
		t.Fatalf("last live score must become final: %+v", stored)
	}

	u1, _, _ := userRepo.GetByID(context.Background(), "u1")
	if u1.TotalPoints != 3 || u1.CurrentRank != 1 {
		t.Fatalf("completion must score predictions and recompute ranks: %+v", u1)
	}
}

func TestMatchService_AutoComplete_Guards(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.December, 21, 19, 0, 0, 0, time.UTC)
	svc, _, _ := newMatchFixture(t, []match.Match{
		{ID: "m-early", MatchDate: kickoff, Status: match.StatusLive, ScoreA: intPtr(0), ScoreB: intPtr(0)},
		{ID: "m-bare", MatchDate: kickoff, Status: match.StatusLive},
	}, nil, nil)
	svc.now = func() time.Time { return kickoff.Add(time.Hour) }

	if _, err := svc.AutoComplete(context.Background(), "m-early"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("match inside regulation must not auto-complete: got=%v", err)
	}

	svc.now = func() time.Time { return kickoff.Add(3 * time.Hour) }
	if _, err := svc.AutoComplete(context.Background(), "m-bare"); !errors.Is(err, ErrScoresMissing) {
		t.Fatalf("match without a live score must not auto-complete: got=%v", err)
	}
	if _, err := svc.AutoComplete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
}

func TestMatchService_AutoComplete_Disabled(t *testing.T) {
	t.Parallel()

	matchRepo := memory.NewMatchRepository(nil)
	predictionRepo := memory.NewPredictionRepository(nil)
	userRepo := memory.NewUserRepository(nil)
	scoring := NewScoringService(matchRepo, predictionRepo, userRepo,
		memory.NewScoreStore(predictionRepo, userRepo), logging.NewNop())
	leaderboard := NewLeaderboardService(userRepo, nil, logging.NewNop())
	svc := NewMatchService(matchRepo, scoring, leaderboard, false, logging.NewNop())

	if _, err := svc.AutoComplete(context.Background(), "m1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("disabled watchdog must reject the call: got=%v", err)
	}
}
