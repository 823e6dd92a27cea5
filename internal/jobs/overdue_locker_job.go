package jobs

import (
	"context"
	"log/slog"

	"lockerroom/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueScanSchedule runs the overdue scan at the top of every minute.
const DefaultOverdueScanSchedule = "0 * * * * *"

// OverdueLockerJob periodically reports Occupied lockers whose checkout time passed.
type OverdueLockerJob struct {
	handler  queries.GetOverdueLockersQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueLockerJob creates the job. schedule is a six field cron expression
// (seconds first); an empty one falls back to DefaultOverdueScanSchedule.
func NewOverdueLockerJob(handler queries.GetOverdueLockersQueryHandler, schedule string, logger *slog.Logger) *OverdueLockerJob {
	if schedule == "" {
		schedule = DefaultOverdueScanSchedule
	}
	return &OverdueLockerJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_locker_job"),
	}
}

// Start registers the scan on the schedule and starts the scheduler.
func (j *OverdueLockerJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue locker job started", "schedule", j.schedule)
	return nil
}

// Stop stops the overdue locker job.
func (j *OverdueLockerJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue locker job stopped")
}

// run performs one scan and returns the number of overdue lockers it found.
func (j *OverdueLockerJob) run(ctx context.Context) int {
	overdue, err := j.handler.Handle(ctx, queries.NewGetOverdueLockersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue locker scan failed", "error", err)
		return 0
	}

	for _, l := range overdue {
		attrs := []any{"number", l.Number, "weight", l.Weight.Units()}
		if l.CheckOutTime != nil {
			attrs = append(attrs, "checkOutTime", *l.CheckOutTime)
		}
		if l.Ticket != nil {
			attrs = append(attrs, "ticket", l.Ticket.String())
		}
		j.logger.WarnContext(ctx, "Locker is past its checkout time", attrs...)
	}
	return len(overdue)
}
