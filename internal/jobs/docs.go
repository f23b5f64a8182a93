// Package jobs provides scheduled background tasks for the freight workflow
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the BOL workflow.
//
// # Available Jobs
//
// 1. NotificationRedeliveryJob - Re-dispatches failed notifications that
// still have retry attempts left. The schedule is configured via
// NOTIFICATION_REDELIVERY_SCHEDULE.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(retryHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Redelivery failures are logged and left for the next run; a notification
// that keeps failing stops being retried once it exhausts its attempt
// budget.
package jobs
