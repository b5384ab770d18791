// Package jobs provides scheduled background tasks for the cafeteria service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PendingOrderRecoveryJob - Runs every 30 seconds to re-enqueue orders
// stuck in Pending status, covering the case where an order row committed
// but the job publish to the broker failed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(requeueHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Recovery failures are logged and retried on the next tick; re-enqueueing an
// order twice only produces a duplicate delivery, which the worker tolerates.
package jobs
