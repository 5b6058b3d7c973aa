package jobs

import (
	"fmt"
	"log/slog"
	"strings"

	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/pkg/metrics"
)

// Schedules holds the cron expressions of the jobs. An empty expression
// disables the job.
type Schedules struct {
	DeadlineAlerts  string
	AlertWindowDays int
	Capacity        string
}

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []job
	names   []string
	started []job
}

// NewJobManager creates the enabled jobs over the report query handler.
func NewJobManager(
	reports queries.ReportQueryHandler,
	schedules Schedules,
	registry *metrics.Registry,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if strings.TrimSpace(schedules.DeadlineAlerts) != "" {
		jm.add("deadline alert", NewDeadlineAlertJob(
			reports, schedules.DeadlineAlerts, schedules.AlertWindowDays, registry, logger))
	}
	if strings.TrimSpace(schedules.Capacity) != "" {
		jm.add("capacity", NewCapacityJob(reports, schedules.Capacity, logger))
	}
	return jm
}

func (jm *JobManager) add(name string, j job) {
	jm.names = append(jm.names, name)
	jm.jobs = append(jm.jobs, j)
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", jm.names[i], err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

// StopAll stops the started jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, j := range jm.started {
		j.Stop()
	}
	jm.started = nil
}
