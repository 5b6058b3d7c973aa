package jobs

import (
	"context"
	"log/slog"

	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

type CapacityHandler interface {
	HandleCapacityUtilization(
		ctx context.Context,
		query queries.GetCapacityUtilizationQuery,
	) (services.CapacityUtilization, error)
}

// CapacityJob periodically warns when the planned hours of open orders exceed
// the weekly shop capacity.
type CapacityJob struct {
	handler  CapacityHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewCapacityJob(handler CapacityHandler, schedule string, logger *slog.Logger) *CapacityJob {
	return &CapacityJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "capacity_job"),
	}
}

func (j *CapacityJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Capacity job started", "schedule", j.schedule)
	return nil
}

func (j *CapacityJob) Run(ctx context.Context) {
	utilization, err := j.handler.HandleCapacityUtilization(ctx, queries.NewGetCapacityUtilizationQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Capacity job failed", "error", err)
		return
	}

	if utilization.OverCapacity {
		j.logger.WarnContext(ctx, "Planned hours exceed weekly capacity",
			"planned_hours", utilization.PlannedHours,
			"weekly_capacity_hours", utilization.WeeklyCapacityHours,
			"ratio", utilization.Ratio,
		)
	}
}

func (j *CapacityJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Capacity job stopped")
}
