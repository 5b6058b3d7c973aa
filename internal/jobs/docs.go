// Package jobs provides scheduled background tasks for the shop floor.
//
// Jobs use github.com/robfig/cron/v3 with standard 5 field expressions and
// only call read-side queries; they never change the ledger.
//
// # Available Jobs
//
// 1. DeadlineAlertJob - logs open orders due within the alert window (overdue included)
// and updates the deadline alerts gauge
// 2. CapacityJob - warns when planned hours exceed the weekly capacity
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reportHandler, jobs.Schedules{
//		DeadlineAlerts:  "0 7 * * *",
//		AlertWindowDays: services.DefaultAlertWindowDays,
//	}, registry, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Query failures are logged and the next tick runs normally
// - Failed job starts will stop any already running jobs
package jobs
