package commands

import (
	"errors"

	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/pkg/guard"
)

var ErrCheckOutLockerCommandIsNotConstructed = errors.New(
	"CheckOutLockerCommand must be created via NewCheckOutLockerCommand or NewCheckOutByTicketCommand constructor",
)

// CheckOutLockerCommand releases a locker either by its number or by the ticket
// issued at check-in.
//
// Example:
//
//	cmd, err := NewCheckOutByTicketCommand(ticket)
//	if err != nil {
//	    return err
//	}
//	res, err := handler.Handle(ctx, cmd)
type CheckOutLockerCommand struct { //nolint:recvcheck //using for validation
	lockerNumber int
	ticket       *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckOutLockerCommand targets the locker by number.
func NewCheckOutLockerCommand(lockerNumber int) (CheckOutLockerCommand, error) {
	if err := validateLockerNumber(lockerNumber); err != nil {
		return CheckOutLockerCommand{}, err
	}

	return CheckOutLockerCommand{
		lockerNumber: lockerNumber,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// NewCheckOutByTicketCommand targets whichever locker the ticket was issued for.
func NewCheckOutByTicketCommand(ticket kernel.UUID) (CheckOutLockerCommand, error) {
	if err := ticket.Validate(); err != nil {
		return CheckOutLockerCommand{}, err
	}

	return CheckOutLockerCommand{
		ticket: &ticket,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
func (c CheckOutLockerCommand) Validate() error {
	return c.guard.Validate(ErrCheckOutLockerCommandIsNotConstructed)
}

// LockerNumber is meaningful only when Ticket returns false.
func (c CheckOutLockerCommand) LockerNumber() int {
	return c.lockerNumber
}

// Ticket returns the ticket and true for ticket based checkouts.
func (c CheckOutLockerCommand) Ticket() (kernel.UUID, bool) {
	if c.ticket == nil {
		return kernel.UUID{}, false
	}
	return *c.ticket, true
}
