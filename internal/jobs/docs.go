// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. OrderDispatchJob - Runs every second to claim pending orders for the best free deliverers
// 2. StaleCartJob - Runs hourly to purge carts that stayed unconfirmed longer than the TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, purgeHandler, dispatchEnabled, cartTTL, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *" and runs every
// second, so a confirmed order never waits long for a free deliverer. The
// stale cart sweep runs at the top of every hour.
//
// # Error Handling
//
// - Dispatch job ignores expected business errors (no pending orders, no free deliverers)
// - Stale cart job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
