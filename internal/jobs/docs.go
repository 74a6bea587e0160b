// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. OrderExpiryJob - Runs every minute to cancel pending orders whose payment
// window has elapsed. Expiry goes through the order lifecycle rules, so every
// cancellation is validated and observable like any staff-initiated one.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireHandler, paymentWindow, logger)
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
// The expiry job logs failures and retries on the next tick; a failed sweep
// leaves the stale orders pending, so no cancellation is ever lost.
package jobs
