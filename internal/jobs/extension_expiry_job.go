package jobs

import (
	"context"
	"log/slog"
	"time"

	"lockerroom/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	// ExtensionExpirySchedule checks for unanswered extension requests every 30 seconds.
	ExtensionExpirySchedule = "*/30 * * * * *"
	// DefaultExtensionDecisionTTL is how long a check-in on a reserved locker waits for an answer.
	DefaultExtensionDecisionTTL = 5 * time.Minute
)

// ExtensionExpiryJob drops extension requests that were never confirmed or declined.
type ExtensionExpiryJob struct {
	handler commands.ExpireExtensionsCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewExtensionExpiryJob creates the job. A ttl <= 0 falls back to DefaultExtensionDecisionTTL.
func NewExtensionExpiryJob(handler commands.ExpireExtensionsCommandHandler, ttl time.Duration, logger *slog.Logger) *ExtensionExpiryJob {
	if ttl <= 0 {
		ttl = DefaultExtensionDecisionTTL
	}
	return &ExtensionExpiryJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "extension_expiry_job"),
	}
}

// Start begins the extension expiry job to run every 30 seconds.
func (j *ExtensionExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(ExtensionExpirySchedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Extension expiry job started (running every 30 seconds)", "ttl", j.ttl)
	return nil
}

// Stop stops the extension expiry job.
func (j *ExtensionExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Extension expiry job stopped")
}

func (j *ExtensionExpiryJob) run(ctx context.Context) []int {
	cmd, err := commands.NewExpireExtensionsCommand(j.ttl)
	if err != nil {
		j.logger.ErrorContext(ctx, "Extension expiry job misconfigured", "error", err)
		return nil
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Extension expiry job failed", "error", err)
		return nil
	}

	if len(expired) > 0 {
		j.logger.InfoContext(ctx, "Expired pending extension requests", "lockers", expired)
	}
	return expired
}
