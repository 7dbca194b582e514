// Package jobs provides scheduled background tasks for the order platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. AnalyticsRefreshJob - Refreshes the analytics materialized views at
// the top of every hour, plus once at startup.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(refreshAnalyticsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and retried at the next tick; the views keep
// serving their previous contents in the meantime.
package jobs
