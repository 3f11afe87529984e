package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/infrastructure/repository/memory"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/logging"
)

type mockFeed struct {
	mock.Mock
}

func (m *mockFeed) FetchAllFixtures(ctx context.Context) ([]ExternalFixture, error) {
	args := m.Called(ctx)
	fixtures, _ := args.Get(0).([]ExternalFixture)
	return fixtures, args.Error(1)
}

func (m *mockFeed) FetchFixturesByDate(ctx context.Context, day time.Time) ([]ExternalFixture, error) {
	args := m.Called(ctx, day)
	fixtures, _ := args.Get(0).([]ExternalFixture)
	return fixtures, args.Error(1)
}

func (m *mockFeed) FetchLiveFixtures(ctx context.Context) ([]ExternalFixture, error) {
	args := m.Called(ctx)
	fixtures, _ := args.Get(0).([]ExternalFixture)
	return fixtures, args.Error(1)
}

func (m *mockFeed) Usage() FeedUsage {
	args := m.Called()
	usage, _ := args.Get(0).(FeedUsage)
	return usage
}

func (m *mockFeed) CanCall() bool {
	args := m.Called()
	return args.Bool(0)
}

func newMockSyncService(feed FeedClient) *SyncService {
	matchRepo := memory.NewMatchRepository(nil)
	predictionRepo := memory.NewPredictionRepository(nil)
	userRepo := memory.NewUserRepository(nil)
	scoring := NewScoringService(matchRepo, predictionRepo, userRepo,
		memory.NewScoreStore(predictionRepo, userRepo), logging.NewNop())
	leaderboard := NewLeaderboardService(userRepo, nil, logging.NewNop())
	return NewSyncService(feed, matchRepo, nil, scoring, leaderboard, logging.NewNop())
}

func TestSyncService_Run_AllModeUsesFullFixtureList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	feed := new(mockFeed)
	feed.On("FetchAllFixtures", mock.Anything).Return([]ExternalFixture{}, nil).Once()
	feed.On("Usage").Return(FeedUsage{Used: 5, Remaining: 90, Limit: 95})

	service := newMockSyncService(feed)
	result, err := service.Run(ctx, SyncModeAll)
	if err != nil {
		t.Fatalf("run all: %v", err)
	}
	if result.Mode != SyncModeAll {
		t.Fatalf("unexpected mode: got=%s want=%s", result.Mode, SyncModeAll)
	}
	if result.Usage.Remaining != 90 {
		t.Fatalf("unexpected remaining budget: got=%d want=90", result.Usage.Remaining)
	}
	feed.AssertExpectations(t)
}

func TestSyncService_Run_FeedFailurePropagates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	upstreamErr := errors.New("provider returned 503")
	feed := new(mockFeed)
	feed.On("FetchLiveFixtures", mock.Anything).Return(nil, upstreamErr).Once()
	feed.On("Usage").Return(FeedUsage{Used: 95, Remaining: 0, Limit: 95})

	service := newMockSyncService(feed)
	_, err := service.Run(ctx, SyncModeLive)
	if !errors.Is(err, upstreamErr) {
		t.Fatalf("expected upstream error, got: %v", err)
	}
	feed.AssertExpectations(t)
}

func TestSyncService_Run_BudgetExhaustionSurfacesTypedError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	feed := new(mockFeed)
	feed.On("FetchLiveFixtures", mock.Anything).Return(nil, ErrBudgetExhausted).Once()
	feed.On("Usage").Return(FeedUsage{Used: 95, Remaining: 0, Limit: 95})

	service := newMockSyncService(feed)
	_, err := service.Run(ctx, SyncModeLive)
	if !errors.Is(err, ErrBudgetExhausted) {
		t.Fatalf("expected budget exhaustion, got: %v", err)
	}
	feed.AssertExpectations(t)
}
