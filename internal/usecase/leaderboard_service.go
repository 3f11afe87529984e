package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/user"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/cache"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/logging"
)

const (
	leaderboardCachePrefix  = "leaderboard:"
	DefaultLeaderboardLimit = 50
	MaxLeaderboardLimit     = 200
)

// LeaderboardEntry is one ranked row. Accuracy is a whole percentage of
// correct predictions over total predictions, 0 when the user has none.
type LeaderboardEntry struct {
	Rank               int    `json:"rank"`
	UserID             string `json:"userId"`
	Username           string `json:"username"`
	TotalPoints        int    `json:"totalPoints"`
	CorrectPredictions int    `json:"correctPredictions"`
	TotalPredictions   int    `json:"totalPredictions"`
	Accuracy           int    `json:"accuracy"`
	CurrentStreak      int    `json:"currentStreak"`
	LongestStreak      int    `json:"longestStreak"`
}

// LeaderboardPage is one page of the ranking plus the overall participant count.
type LeaderboardPage struct {
	Entries []LeaderboardEntry `json:"entries"`
	Total   int                `json:"total"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
}

// LeaderboardService ranks users by points. Admin accounts run the tournament
// and never appear in the standings.
type LeaderboardService struct {
	userRepo user.Repository
	store    *cache.Store
	logger   *logging.Logger
}

func NewLeaderboardService(userRepo user.Repository, store *cache.Store, logger *logging.Logger) *LeaderboardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeaderboardService{
		userRepo: userRepo,
		store:    store,
		logger:   logger,
	}
}

// RecomputeRanks reassigns CurrentRank for every non-admin user and drops the
// cached pages. Ties on points break on correct predictions, then keep the
// previous relative order.
func (s *LeaderboardService) RecomputeRanks(ctx context.Context) error {
	ranked, err := s.rankedUsers(ctx)
	if err != nil {
		return err
	}

	for i, u := range ranked {
		rank := i + 1
		if u.CurrentRank == rank {
			continue
		}
		if err := s.userRepo.UpdateFunc(ctx, u.ID, func(u *user.User) {
			u.CurrentRank = rank
		}); err != nil {
			return fmt.Errorf("update rank for user=%s: %w", u.ID, err)
		}
	}

	if s.store != nil {
		s.store.DeletePrefix(ctx, leaderboardCachePrefix)
	}
	s.logger.DebugContext(ctx, "leaderboard ranks recomputed", "users", len(ranked))
	return nil
}

// List returns one page of the current standings. Pages are cached until the
// next rank recompute invalidates them.
func (s *LeaderboardService) List(ctx context.Context, limit, offset int) (LeaderboardPage, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}
	if offset < 0 {
		offset = 0
	}

	load := func(ctx context.Context) (any, error) {
		return s.buildPage(ctx, limit, offset)
	}

	if s.store == nil {
		page, err := s.buildPage(ctx, limit, offset)
		if err != nil {
			return LeaderboardPage{}, err
		}
		return page, nil
	}

	key := fmt.Sprintf("%s%d:%d", leaderboardCachePrefix, limit, offset)
	value, err := s.store.GetOrLoad(ctx, key, load)
	if err != nil {
		return LeaderboardPage{}, err
	}
	page, ok := value.(LeaderboardPage)
	if !ok {
		return LeaderboardPage{}, fmt.Errorf("unexpected cached leaderboard type %T", value)
	}
	return page, nil
}

func (s *LeaderboardService) buildPage(ctx context.Context, limit, offset int) (LeaderboardPage, error) {
	ranked, err := s.rankedUsers(ctx)
	if err != nil {
		return LeaderboardPage{}, err
	}

	page := LeaderboardPage{
		Entries: []LeaderboardEntry{},
		Total:   len(ranked),
		Limit:   limit,
		Offset:  offset,
	}
	if offset >= len(ranked) {
		return page, nil
	}

	end := offset + limit
	if end > len(ranked) {
		end = len(ranked)
	}
	for i, u := range ranked[offset:end] {
		accuracy := 0
		if u.TotalPredictions > 0 {
			accuracy = u.CorrectPredictions * 100 / u.TotalPredictions
		}
		page.Entries = append(page.Entries, LeaderboardEntry{
			Rank:               offset + i + 1,
			UserID:             u.ID,
			Username:           u.Username,
			TotalPoints:        u.TotalPoints,
			CorrectPredictions: u.CorrectPredictions,
			TotalPredictions:   u.TotalPredictions,
			Accuracy:           accuracy,
			CurrentStreak:      u.CurrentStreak,
			LongestStreak:      u.LongestStreak,
		})
	}
	return page, nil
}

func (s *LeaderboardService) rankedUsers(ctx context.Context) ([]user.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	ranked := make([]user.User, 0, len(users))
	for _, u := range users {
		if u.IsAdmin {
			continue
		}
		ranked = append(ranked, u)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalPoints != ranked[j].TotalPoints {
			return ranked[i].TotalPoints > ranked[j].TotalPoints
		}
		return ranked[i].CorrectPredictions > ranked[j].CorrectPredictions
	})
	return ranked, nil
}
