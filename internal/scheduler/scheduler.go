package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/logging"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/usecase"
)

// Scheduler drives the periodic feed reconciliation. One job, fixed interval;
// a tick is skipped outright when the daily budget is spent or a previous run
// is still going.
type Scheduler struct {
	sync     *usecase.SyncService
	feed     usecase.FeedClient
	interval time.Duration
	logger   *logging.Logger
	sched    gocron.Scheduler
}

func New(sync *usecase.SyncService, feed usecase.FeedClient, interval time.Duration, logger *logging.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("sync interval must be > 0")
	}
	if logger == nil {
		logger = logging.Default()
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	return &Scheduler{
		sync:     sync,
		feed:     feed,
		interval: interval,
		logger:   logger,
		sched:    sched,
	}, nil
}

func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.sched.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() { s.tick(ctx) }),
	)
	if err != nil {
		return fmt.Errorf("register sync job: %w", err)
	}

	s.sched.Start()
	s.logger.Info("sync scheduler started", "interval", s.interval.String())
	return nil
}

func (s *Scheduler) Stop() error {
	return s.sched.Shutdown()
}

func (s *Scheduler) tick(ctx context.Context) {
	if !s.feed.CanCall() {
		s.logger.WarnContext(ctx, "skip scheduled sync, daily budget exhausted",
			"usage", s.feed.Usage())
		return
	}

	result, err := s.sync.RunScheduled(ctx)
	if err != nil {
		if errors.Is(err, usecase.ErrSyncInProgress) {
			s.logger.DebugContext(ctx, "skip scheduled sync, previous run still going")
			return
		}
		s.logger.ErrorContext(ctx, "scheduled sync failed", "error", err)
		return
	}

	s.logger.DebugContext(ctx, "scheduled sync done",
		"mode", result.Mode,
		"checked", result.MatchesChecked,
		"updated", result.MatchesUpdated,
	)
}
