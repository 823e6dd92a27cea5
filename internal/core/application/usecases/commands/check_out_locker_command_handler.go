package commands

import (
	"context"
	"log/slog"

	"lockerroom/internal/core/domain/model/activity"
	"lockerroom/internal/core/domain/model/locker"
)

// CheckOutLockerCommandHandler releases goods and returns the locker to Free.
type CheckOutLockerCommandHandler struct {
	registry *locker.Registry
	journal  journal
}

// NewCheckOutLockerCommandHandler creates the handler.
func NewCheckOutLockerCommandHandler(
	registry *locker.Registry,
	uowFactory UoWFactory,
	logger *slog.Logger,
) CheckOutLockerCommandHandler {
	return CheckOutLockerCommandHandler{
		registry: registry,
		journal:  newJournal(uowFactory, logger),
	}
}

// Handle checks the locker out and journals the released weight.
func (h CheckOutLockerCommandHandler) Handle(ctx context.Context, cmd CheckOutLockerCommand) (locker.CheckOutResult, error) {
	if err := cmd.Validate(); err != nil {
		return locker.CheckOutResult{}, err
	}

	var (
		result locker.CheckOutResult
		err    error
	)
	if ticket, ok := cmd.Ticket(); ok {
		result, err = h.registry.CheckOutByTicket(ticket)
	} else {
		result, err = h.registry.CheckOut(cmd.LockerNumber())
	}
	if err != nil {
		return locker.CheckOutResult{}, err
	}

	weight := result.Weight.Units()
	checkedOutAt := result.CheckedOutAt
	details := activity.Details{
		Weight:       &weight,
		CheckOutTime: &checkedOutAt,
	}
	if result.Ticket != nil {
		ticket := result.Ticket.String()
		details.Ticket = &ticket
	}
	h.journal.record(ctx, activity.CheckedOut, checkedOutAt, details, result.Number)

	return result, nil
}
