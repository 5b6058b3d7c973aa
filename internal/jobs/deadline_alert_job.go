package jobs

import (
	"context"
	"log/slog"
	"time"

	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DeadlineAlertsHandler is the read-side use case the alert job polls.
type DeadlineAlertsHandler interface {
	HandleDeadlineAlerts(ctx context.Context, query queries.GetDeadlineAlertsQuery) ([]queries.OrderView, error)
}

// DeadlineAlertJob periodically logs the open orders due within the alert
// window, overdue ones included.
type DeadlineAlertJob struct {
	handler    DeadlineAlertsHandler
	schedule   string
	windowDays int
	clock      func() time.Time
	metrics    *metrics.Registry
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDeadlineAlertJob creates the job. schedule is a standard 5 field cron
// expression; registry may be nil.
func NewDeadlineAlertJob(
	handler DeadlineAlertsHandler,
	schedule string,
	windowDays int,
	registry *metrics.Registry,
	logger *slog.Logger,
) *DeadlineAlertJob {
	return &DeadlineAlertJob{
		handler:    handler,
		schedule:   schedule,
		windowDays: windowDays,
		clock:      time.Now,
		metrics:    registry,
		cron:       cron.New(),
		logger:     logger.With("component", "deadline_alert_job"),
	}
}

func (j *DeadlineAlertJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Deadline alert job started", "schedule", j.schedule)
	return nil
}

// Run performs one check. Failures are logged.
func (j *DeadlineAlertJob) Run(ctx context.Context) {
	today := kernel.DateFromTime(j.clock())

	query, err := queries.NewGetDeadlineAlertsQuery(today, j.windowDays)
	if err != nil {
		j.logger.ErrorContext(ctx, "Deadline alert job misconfigured", "error", err)
		return
	}

	alerts, err := j.handler.HandleDeadlineAlerts(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Deadline alert job failed", "error", err)
		return
	}

	if j.metrics != nil {
		j.metrics.DeadlineAlerts.Set(float64(len(alerts)))
	}
	if len(alerts) == 0 {
		return
	}

	j.logger.WarnContext(ctx, "Orders close to their deadline",
		"count", len(alerts),
		"window_days", j.windowDays,
		"date", today.String(),
	)
	for _, o := range alerts {
		j.logger.WarnContext(ctx, "Deadline alert",
			"order_id", o.ID.String(),
			"name", o.Name,
			"product", o.Product,
			"deadline", o.Deadline.String(),
			"overdue", o.Deadline.Before(today),
		)
	}
}

func (j *DeadlineAlertJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Deadline alert job stopped")
}
