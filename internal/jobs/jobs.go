package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/segyhp/easy-service/internal/domain"
)

// ExceptionProposalPurger removes exception proposals past their retention window.
type ExceptionProposalPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// StatisticsReporter summarizes the agreements of a period.
type StatisticsReporter interface {
	GetStatistics(ctx context.Context, period domain.Period) (*domain.Statistics, error)
}

// Jobs contains the logic for all scheduled tasks.
type Jobs struct {
	purger   ExceptionProposalPurger
	reporter StatisticsReporter
	logger   *slog.Logger
	timeout  time.Duration
}

func NewJobs(purger ExceptionProposalPurger, reporter StatisticsReporter, logger *slog.Logger) *Jobs {
	return &Jobs{
		purger:   purger,
		reporter: reporter,
		logger:   logger,
		timeout:  5 * time.Minute,
	}
}

// PurgeExceptionProposals drops the exception proposal history older than the retention window.
func (j *Jobs) PurgeExceptionProposals() {
	j.logger.Info("starting exception proposal purge job")
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	removed, err := j.purger.PurgeExpired(ctx)
	if err != nil {
		j.logger.Error("failed to purge exception proposals", "error", err)
		return
	}

	j.logger.Info("exception proposal purge job finished", "removed", removed)
}

// ReportAgreementStatus logs the agreement statistics of the current month, one line per state.
func (j *Jobs) ReportAgreementStatus() {
	j.logger.Info("starting agreement status report job")
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	stats, err := j.reporter.GetStatistics(ctx, domain.PeriodMonth)
	if err != nil {
		j.logger.Error("failed to compute agreement statistics", "error", err)
		return
	}

	j.logger.Info("agreement status",
		"period", domain.PeriodMonth,
		"negotiated", stats.Negotiated.StringFixed(2),
		"quantity", stats.Quantity,
	)
	for _, state := range domain.States {
		entry := stats.ByState[state]
		j.logger.Info("agreement status by state",
			"state", state,
			"total", entry.Total.StringFixed(2),
			"total_percent", entry.TotalPercent.String(),
			"quantity", entry.Quantity,
			"quantity_percent", entry.QuantityPercent.String(),
		)
	}

	j.logger.Info("agreement status report job finished")
}
