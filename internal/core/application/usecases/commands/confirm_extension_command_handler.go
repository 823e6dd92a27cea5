package commands

import (
	"context"
	"errors"
	"log/slog"

	"lockerroom/internal/core/domain/model/activity"
	"lockerroom/internal/core/domain/model/locker"
)

// ConfirmExtensionCommandHandler applies or drops a pending extension request.
type ConfirmExtensionCommandHandler struct {
	registry *locker.Registry
	journal  journal
}

// NewConfirmExtensionCommandHandler creates the handler.
func NewConfirmExtensionCommandHandler(
	registry *locker.Registry,
	uowFactory UoWFactory,
	logger *slog.Logger,
) ConfirmExtensionCommandHandler {
	return ConfirmExtensionCommandHandler{
		registry: registry,
		journal:  newJournal(uowFactory, logger),
	}
}

// Handle resolves the request. A decline still consumes the request: it is journaled as
// ExtensionDeclined and locker.ErrExtensionDeclined is returned to the caller.
func (h ConfirmExtensionCommandHandler) Handle(ctx context.Context, cmd ConfirmExtensionCommand) (locker.ExtensionResult, error) {
	if err := cmd.Validate(); err != nil {
		return locker.ExtensionResult{}, err
	}

	result, err := h.registry.ConfirmExtension(cmd.LockerNumber(), cmd.Extend())
	if errors.Is(err, locker.ErrExtensionDeclined) {
		h.journal.record(ctx, activity.ExtensionDeclined, h.registry.Now(), activity.Details{}, cmd.LockerNumber())
		return locker.ExtensionResult{}, err
	}
	if err != nil {
		return locker.ExtensionResult{}, err
	}

	hours := result.DurationHours
	checkOutTime := result.CheckOutTime
	h.journal.record(ctx, activity.Extended, h.registry.Now(), activity.Details{
		DurationHours: &hours,
		CheckOutTime:  &checkOutTime,
	}, cmd.LockerNumber())

	return result, nil
}
