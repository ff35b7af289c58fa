// Package jobs provides scheduled background tasks for the order lifecycle.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Drains the notification outbox every 10 seconds
// and whenever PostgreSQL signals a new row on the outbox LISTEN channel
// 2. LowStockJob - Runs daily at 08:00 and enqueues one low stock alert when
// any active product has a counter below the threshold
//
// # Usage
//
//	jobManager := jobs.NewJobManager(&notificationHandler, listener, &productHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Dispatch errors are logged; delivery failures are stored on the outbox row
// - A dispatched message is never retried
// - Failed job starts will stop any already running jobs
package jobs
