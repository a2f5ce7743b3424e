// Package jobs provides scheduled background tasks for the operations dashboard.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance.
//
// # Available Jobs
//
// 1. SessionCleanupJob - Runs every minute to drop expired login sessions
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the session store
//	jobManager := jobs.NewJobManager(sessions, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
package jobs
