// Package jobs provides scheduled background tasks for the ledger.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the point-of-sale service.
//
// # Available Jobs
//
// 1. SalesReportJob - Runs at closing time to render and log the daily sales report
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the required handlers
//	jobManager := jobs.NewJobManager(salesReportHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
package jobs
