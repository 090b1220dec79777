package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/segyhp/easy-service/internal/config"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the cron jobs.
type Scheduler struct {
	cron   *cron.Cron
	jobs   *Jobs
	logger *slog.Logger
	config config.SchedulerConfig
}

// NewScheduler creates a scheduler running six-field (seconds first) specs in loc.
func NewScheduler(jobs *Jobs, logger *slog.Logger, cfg config.SchedulerConfig, loc *time.Location) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	return &Scheduler{
		cron:   c,
		jobs:   jobs,
		logger: logger,
		config: cfg,
	}
}

// Register adds every job to the cron table without starting it.
func (s *Scheduler) Register() error {
	entries := []struct {
		name     string
		schedule string
		run      func()
	}{
		{name: "exception proposal purge", schedule: s.config.PurgeSchedule, run: s.jobs.PurgeExceptionProposals},
		{name: "agreement status report", schedule: s.config.StatusSchedule, run: s.jobs.ReportAgreementStatus},
	}

	for _, e := range entries {
		if _, err := s.cron.AddFunc(e.schedule, e.run); err != nil {
			return fmt.Errorf("failed to schedule %s job: %w", e.name, err)
		}
		s.logger.Info("scheduled job", "job", e.name, "schedule", e.schedule)
	}
	return nil
}

// Start registers the jobs and starts the cron scheduler.
func (s *Scheduler) Start() error {
	if err := s.Register(); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop gracefully stops the cron scheduler.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Entries returns the number of registered jobs.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
