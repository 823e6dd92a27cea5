package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"lockerroom/internal/core/application/usecases/commands"
	"lockerroom/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueLockerJob   *OverdueLockerJob
	extensionExpiryJob *ExtensionExpiryJob
}

// Settings carries the scheduling knobs read from configuration.
type Settings struct {
	OverdueScanSchedule  string
	ExtensionDecisionTTL time.Duration
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	overdueLockersHandler queries.GetOverdueLockersQueryHandler,
	expireExtensionsHandler commands.ExpireExtensionsCommandHandler,
	settings Settings,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueLockerJob:   NewOverdueLockerJob(overdueLockersHandler, settings.OverdueScanSchedule, logger),
		extensionExpiryJob: NewExtensionExpiryJob(expireExtensionsHandler, settings.ExtensionDecisionTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.extensionExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start extension expiry job: %w", err)
	}

	if err := jm.overdueLockerJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.extensionExpiryJob.Stop()
		return fmt.Errorf("failed to start overdue locker job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueLockerJob.Stop()
	jm.extensionExpiryJob.Stop()
}
