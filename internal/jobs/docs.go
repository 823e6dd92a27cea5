// Package jobs provides scheduled background tasks for the locker room.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use six fields, seconds first.
//
// # Available Jobs
//
// 1. OverdueLockerJob - scans for Occupied lockers past their checkout time and logs
// a warning for each. The schedule comes from OVERDUE_SCAN_SCHEDULE (every minute by default).
// 2. ExtensionExpiryJob - runs every 30 seconds and drops extension requests that stayed
// unanswered longer than EXTENSION_DECISION_TTL. Each drop is journaled.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(overdueHandler, expireHandler, jobs.Settings{
//		OverdueScanSchedule:  cfg.OverdueScanSchedule,
//		ExtensionDecisionTTL: cfg.ExtensionDecisionTTL,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Jobs never stop on a failed run; the error is logged and the next tick tries again.
// A job that fails to start stops the ones already running.
package jobs
