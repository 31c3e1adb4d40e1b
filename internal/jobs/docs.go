// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. DeliveryAssignmentJob - Runs every second to assign pending deliveries to available vehicles
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignDeliveryHandler, logger)
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
// The assignment job uses the cron expression "* * * * * *" which means it runs
// every second. This frequency keeps the wait between a delivery becoming pending
// and a vehicle picking it up short.
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no pending deliveries, no free vehicles)
// - Other errors are logged, the job keeps running
// - Failed job starts will stop any already running jobs
package jobs
