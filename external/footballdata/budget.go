package footballdata

import (
	"sync"
	"time"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/usecase"
)

// DefaultDailyLimit keeps a safety margin below the provider's real 100
// requests/day free-tier cap.
const DefaultDailyLimit = 95

// dailyBudget counts upstream calls per local calendar day. State lives for
// the process lifetime only; a restart resets consumption mid-day, an
// accepted tradeoff at this call volume. All access goes through the mutex so
// the counter survives a parallelized caller.
type dailyBudget struct {
	mu    sync.Mutex
	limit int
	used  int
	date  string
	now   func() time.Time
}

func newDailyBudget(limit int) *dailyBudget {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}
	return &dailyBudget{
		limit: limit,
		now:   time.Now,
	}
}

// acquire consumes one call, rolling the counter on the first call after a
// local-date change. It reports false when the budget is spent.
func (b *dailyBudget) acquire() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rollLocked()
	if b.used >= b.limit {
		return false
	}
	b.used++
	return true
}

func (b *dailyBudget) canCall() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rollLocked()
	return b.used < b.limit
}

func (b *dailyBudget) usage() usecase.FeedUsage {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rollLocked()
	return usecase.FeedUsage{
		Used:      b.used,
		Remaining: b.limit - b.used,
		Limit:     b.limit,
		Date:      b.date,
	}
}

func (b *dailyBudget) rollLocked() {
	today := b.now().Format("2006-01-02")
	if b.date != today {
		b.date = today
		b.used = 0
	}
}
