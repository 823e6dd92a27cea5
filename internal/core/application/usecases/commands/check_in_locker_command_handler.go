package commands

import (
	"context"
	"log/slog"

	"lockerroom/internal/core/domain/model/activity"
	"lockerroom/internal/core/domain/model/locker"
)

// CheckInLockerCommandHandler runs a check-in against the registry.
//
// Example:
//
//	res, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, locker.ErrCheckInTimeNotFuture):
//	    // ask for another time
//	case err != nil:
//	    return err
//	case res.Outcome == locker.ExtensionRequired:
//	    // ask the customer, then run ConfirmExtensionCommand
//	default:
//	    // hand res.Ticket to the customer
//	}
type CheckInLockerCommandHandler struct {
	registry *locker.Registry
	journal  journal
}

// NewCheckInLockerCommandHandler creates the handler.
func NewCheckInLockerCommandHandler(
	registry *locker.Registry,
	uowFactory UoWFactory,
	logger *slog.Logger,
) CheckInLockerCommandHandler {
	return CheckInLockerCommandHandler{
		registry: registry,
		journal:  newJournal(uowFactory, logger),
	}
}

// Handle checks goods in. A PreBooked result is journaled as CheckedIn, an
// ExtensionRequired result as ExtensionRequested.
func (h CheckInLockerCommandHandler) Handle(ctx context.Context, cmd CheckInLockerCommand) (locker.CheckInResult, error) {
	if err := cmd.Validate(); err != nil {
		return locker.CheckInResult{}, err
	}

	result, err := h.registry.CheckIn(cmd.LockerNumber(), cmd.Weight(), cmd.CheckInTime(), cmd.DurationHours())
	if err != nil {
		return locker.CheckInResult{}, err
	}

	weight := cmd.Weight().Units()
	hours := cmd.DurationHours()
	checkInTime := cmd.CheckInTime()
	details := activity.Details{
		Weight:        &weight,
		DurationHours: &hours,
		CheckInTime:   &checkInTime,
	}

	kind := activity.ExtensionRequested
	if result.Outcome == locker.PreBooked {
		kind = activity.CheckedIn
		ticket := result.Ticket.String()
		details.Ticket = &ticket
		details.CheckOutTime = result.CheckOutTime
	}
	h.journal.record(ctx, kind, h.registry.Now(), details, cmd.LockerNumber())

	return result, nil
}
