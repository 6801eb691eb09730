// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. ProgressionSweepJob - Runs every second to advance orders whose
// elapsed-time thresholds have been crossed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileOrdersHandler, logger)
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
// The sweep uses the cron expression "* * * * * *" which means it runs every
// second, keeping stored order state close to what the progression schedule
// dictates even between client polls.
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick; reconciliation is
// idempotent, so a missed or repeated run never corrupts order state.
package jobs
