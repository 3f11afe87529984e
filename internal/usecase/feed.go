package usecase

import (
	"context"
	"time"
)

// ExternalFixture is one match record as the upstream provider reports it,
// already mapped to internal vocabulary where possible.
type ExternalFixture struct {
	Date         time.Time
	StatusCode   string
	Status       string
	HomeTeamName string
	AwayTeamName string
	GoalsHome    *int
	GoalsAway    *int
	Venue        string
}

// FeedUsage reports consumption of the daily call budget.
type FeedUsage struct {
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
	Limit     int    `json:"limit"`
	Date      string `json:"date"`
}

// FeedClient wraps the upstream fixture provider. Implementations enforce the
// daily call budget: every Fetch* returns ErrBudgetExhausted once it is spent.
type FeedClient interface {
	FetchAllFixtures(ctx context.Context) ([]ExternalFixture, error)
	FetchFixturesByDate(ctx context.Context, day time.Time) ([]ExternalFixture, error)
	FetchLiveFixtures(ctx context.Context) ([]ExternalFixture, error)
	Usage() FeedUsage
	CanCall() bool
}
