// Package jobs provides scheduled background tasks for the cargo tracking
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. CargoInspectionJob - Runs every minute to rederive the delivery
// snapshot of every cargo still in transit against its latest handling
// history
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(inspectUnderwayCargosHandler, logger)
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
// The inspection job uses the cron expression "* * * * *" which means it
// runs every minute. Handling events already trigger an inspection of the
// affected cargo on registration; the sweep is the safety net that keeps
// delivery snapshots converging when an asynchronous inspection was lost.
//
// # Error Handling
//
// - The inspection job ignores the expected empty-sweep result (no cargos
// underway)
// - All other sweep errors are logged as they indicate system issues
package jobs
