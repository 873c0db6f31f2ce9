// Package jobs provides scheduled background tasks for the load planner.
//
// Jobs use github.com/robfig/cron/v3 with a leading seconds field.
//
// # Available Jobs
//
// LoadPlanSnapshotJob runs once a day (default "0 0 6 * * *") and plans every
// truck that has orders for that day through the PlanLoad command, which also
// writes the load history. Trucks are planned concurrently, bounded by the
// configured concurrency.
//
// # Usage
//
//	snapshot := jobs.NewLoadPlanSnapshotJob(planHandler, orderLines, metrics, schedule, 4, logger)
//	jobManager := jobs.NewJobManager(logger, snapshot)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A truck that cannot be planned is logged at WARN and counted as failed; the
// rest of the run continues. Failing to list the day's vehicles aborts the
// run and is logged at ERROR.
package jobs
