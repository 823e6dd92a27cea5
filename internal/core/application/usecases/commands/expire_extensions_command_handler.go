package commands

import (
	"context"
	"log/slog"

	"lockerroom/internal/core/domain/model/activity"
	"lockerroom/internal/core/domain/model/locker"
)

// ExpireExtensionsCommandHandler clears stale extension requests.
type ExpireExtensionsCommandHandler struct {
	registry *locker.Registry
	journal  journal
}

// NewExpireExtensionsCommandHandler creates the handler.
func NewExpireExtensionsCommandHandler(
	registry *locker.Registry,
	uowFactory UoWFactory,
	logger *slog.Logger,
) ExpireExtensionsCommandHandler {
	return ExpireExtensionsCommandHandler{
		registry: registry,
		journal:  newJournal(uowFactory, logger),
	}
}

// Handle returns the numbers of the lockers whose request expired. All entries of one
// run are journaled in a single transaction.
func (h ExpireExtensionsCommandHandler) Handle(ctx context.Context, cmd ExpireExtensionsCommand) ([]int, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	expired := h.registry.ExpirePendingExtensions(cmd.MaxAge())
	if len(expired) == 0 {
		return expired, nil
	}

	h.journal.record(ctx, activity.ExtensionExpired, h.registry.Now(), activity.Details{}, expired...)
	return expired, nil
}
