package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/infrastructure/repository/memory"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/logging"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/usecase"
)

type countingFeed struct {
	canCall   bool
	liveCalls int
}

func (f *countingFeed) FetchAllFixtures(context.Context) ([]usecase.ExternalFixture, error) {
	return nil, nil
}

func (f *countingFeed) FetchFixturesByDate(context.Context, time.Time) ([]usecase.ExternalFixture, error) {
	return nil, nil
}

func (f *countingFeed) FetchLiveFixtures(context.Context) ([]usecase.ExternalFixture, error) {
	f.liveCalls++
	return nil, nil
}

func (f *countingFeed) Usage() usecase.FeedUsage { return usecase.FeedUsage{} }

func (f *countingFeed) CanCall() bool { return f.canCall }

func newTestScheduler(t *testing.T, feed usecase.FeedClient) *Scheduler {
	t.Helper()
	matchRepo := memory.NewMatchRepository(nil)
	predictionRepo := memory.NewPredictionRepository(nil)
	userRepo := memory.NewUserRepository(nil)
	scoring := usecase.NewScoringService(matchRepo, predictionRepo, userRepo,
		memory.NewScoreStore(predictionRepo, userRepo), logging.NewNop())
	leaderboard := usecase.NewLeaderboardService(userRepo, nil, logging.NewNop())
	syncSvc := usecase.NewSyncService(feed, matchRepo, nil, scoring, leaderboard, logging.NewNop())

	sched, err := New(syncSvc, feed, time.Minute, logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return sched
}

func TestNew_RejectsNonPositiveInterval(t *testing.T) {
	t.Parallel()

	if _, err := New(nil, &countingFeed{}, 0, logging.NewNop()); err == nil {
		t.Fatalf("expected error for zero interval")
	}
}

func TestTick_SkipsWhenBudgetSpent(t *testing.T) {
	t.Parallel()

	feed := &countingFeed{canCall: false}
	sched := newTestScheduler(t, feed)

	sched.tick(context.Background())
	if feed.liveCalls != 0 {
		t.Fatalf("exhausted budget must skip the run: live calls=%d", feed.liveCalls)
	}
}

func TestTick_RunsWhenBudgetAvailable(t *testing.T) {
	t.Parallel()

	feed := &countingFeed{canCall: true}
	sched := newTestScheduler(t, feed)

	sched.tick(context.Background())
	if feed.liveCalls != 1 {
		t.Fatalf("tick must run the scheduled sync: live calls=%d", feed.liveCalls)
	}
}
