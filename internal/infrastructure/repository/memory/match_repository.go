package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	byID := make(map[string]match.Match, len(matches))
	for _, item := range matches {
		byID[item.ID] = item
	}

	return &MatchRepository{matches: byID}
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[id]
	return m, ok, nil
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, m := range r.matches {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].MatchDate.Before(out[j].MatchDate)
	})
	return out, nil
}

// ListByDay returns matches whose kickoff falls on the given UTC calendar day.
func (r *MatchRepository) ListByDay(_ context.Context, day time.Time) ([]match.Match, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.matches {
		kickoff := m.MatchDate.UTC()
		if !kickoff.Before(dayStart) && kickoff.Before(dayEnd) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].MatchDate.Before(out[j].MatchDate)
	})
	return out, nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.matches[m.ID]; !ok {
		return fmt.Errorf("match %s not found", m.ID)
	}
	r.matches[m.ID] = m
	return nil
}
