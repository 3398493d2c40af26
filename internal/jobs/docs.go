// Package jobs provides scheduled background tasks.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the point-of-sale service.
//
// # Available Jobs
//
// 1. SnapshotJob - Runs daily at 03:00 to take a snapshot of the store file
// 2. SessionSweepJob - Runs every minute to drop expired login sessions
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(createSnapshotHandler, sessionGuard, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Snapshot job logs failures; the next run retries from scratch
// - Sweep job cannot fail; it only reports how many sessions it removed
// - Failed job starts will stop any already running jobs
package jobs
