package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/abanico/internal/config"
)

const refreshTimeout = 2 * time.Minute

// Warmer reloads cached reference data.
type Warmer interface {
	Warm(ctx context.Context) error
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron   *cron.Cron
	spec   string
	warmer Warmer
	logger *zap.Logger
}

// NewScheduler creates a scheduler that refreshes reference data on the configured cron spec.
func NewScheduler(cfg config.SchedulerConfig, warmer Warmer, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}

	// Standard 5-field cron (min, hour, dom, month, dow) in the farm's timezone.
	c := cron.New(cron.WithLocation(loc))

	return &Scheduler{
		cron:   c,
		spec:   cfg.RefreshCron,
		warmer: warmer,
		logger: logger,
	}, nil
}

// Start registers the refresh job and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("refresh_cron", s.spec))

	if _, err := s.cron.AddFunc(s.spec, s.refreshReference); err != nil {
		return fmt.Errorf("schedule reference refresh: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) refreshReference() {
	s.logger.Info("refreshing reference data")
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := s.warmer.Warm(ctx); err != nil {
		s.logger.Error("failed to refresh reference data", zap.Error(err))
		return
	}
	s.logger.Info("reference data refreshed successfully")
}
