package commands

import (
	"context"
	"log/slog"
	"time"

	"lockerroom/internal/core/domain/model/activity"
	"lockerroom/internal/core/domain/model/kernel"
)

// journal writes activity entries after the registry accepted a mutation.
// The registry is the source of truth, so a failing write is logged and swallowed
// instead of being reported as a failed operation.
type journal struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func newJournal(uowFactory UoWFactory, logger *slog.Logger) journal {
	if logger == nil {
		logger = slog.Default()
	}
	return journal{uowFactory: uowFactory, logger: logger}
}

// record journals one entry per locker number, all in a single transaction.
func (j journal) record(ctx context.Context, kind activity.Kind, at time.Time, details activity.Details, lockerNumbers ...int) {
	if err := j.write(ctx, kind, at, details, lockerNumbers); err != nil {
		j.logger.ErrorContext(ctx, "Failed to journal locker activity",
			"kind", kind.String(),
			"lockers", lockerNumbers,
			"error", err,
		)
	}
}

func (j journal) write(ctx context.Context, kind activity.Kind, at time.Time, details activity.Details, lockerNumbers []int) error {
	if len(lockerNumbers) == 0 {
		return nil
	}

	entries := make([]*activity.Activity, 0, len(lockerNumbers))
	for _, number := range lockerNumbers {
		entry, err := activity.NewActivity(kernel.NewUUID(), number, kind, at, details)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ActivityRepository()
	for _, entry := range entries {
		if err := repo.Add(ctx, entry); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
