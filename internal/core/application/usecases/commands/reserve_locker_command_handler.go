package commands

import (
	"context"
	"log/slog"

	"lockerroom/internal/core/domain/model/activity"
	"lockerroom/internal/core/domain/model/locker"
)

// ReserveLockerCommandHandler claims a Free locker and journals the reservation.
type ReserveLockerCommandHandler struct {
	registry *locker.Registry
	journal  journal
}

// NewReserveLockerCommandHandler creates the handler.
func NewReserveLockerCommandHandler(
	registry *locker.Registry,
	uowFactory UoWFactory,
	logger *slog.Logger,
) ReserveLockerCommandHandler {
	return ReserveLockerCommandHandler{
		registry: registry,
		journal:  newJournal(uowFactory, logger),
	}
}

// Handle reserves the locker. Domain failures (not found, already reserved,
// already occupied) are returned unchanged so callers can match them with errors.Is.
func (h ReserveLockerCommandHandler) Handle(ctx context.Context, cmd ReserveLockerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.registry.Reserve(cmd.LockerNumber(), cmd.CustomerName()); err != nil {
		return err
	}

	name := cmd.CustomerName()
	h.journal.record(ctx, activity.Reserved, h.registry.Now(), activity.Details{
		CustomerName: &name,
	}, cmd.LockerNumber())

	return nil
}
