package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"playerone/internal/domain"
)

// StatusScheduler periodically moves events through the time-driven part of
// their lifecycle: window open, window closed, ongoing and completed.
type StatusScheduler struct {
	eventRepo      domain.EventRepository
	interval       time.Duration
	logger         *slog.Logger
	now            func() time.Time
	contextTimeout time.Duration
	sched          gocron.Scheduler
}

func NewStatusScheduler(eventRepo domain.EventRepository, interval time.Duration, logger *slog.Logger, timeout time.Duration, opts ...Option) *StatusScheduler {
	o := applyOptions(opts)
	return &StatusScheduler{
		eventRepo:      eventRepo,
		interval:       interval,
		logger:         logger,
		now:            o.now,
		contextTimeout: timeout,
	}
}

// Start registers the refresh job and starts the scheduler. The first run
// happens immediately.
func (s *StatusScheduler) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	_, err = sched.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			_, _ = s.RunOnce(context.Background())
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = sched.Shutdown()
		return fmt.Errorf("failed to register status job: %w", err)
	}
	sched.Start()
	s.sched = sched
	s.logger.Info("status scheduler started", "interval", s.interval.String())
	return nil
}

// RunOnce advances every eligible event and returns the number of rows changed.
func (s *StatusScheduler) RunOnce(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	n, err := s.eventRepo.AdvanceStatuses(ctx, s.now())
	if err != nil {
		s.logger.Error("advance event statuses", "error", err)
		return 0, err
	}
	if n > 0 {
		s.logger.Info("event statuses advanced", "count", n)
	}
	return n, nil
}

// Stop shuts the scheduler down, waiting for a running job to finish.
func (s *StatusScheduler) Stop() error {
	if s.sched == nil {
		return nil
	}
	return s.sched.Shutdown()
}
