package commands

import (
	"errors"
	"fmt"
	"strings"

	"lockerroom/internal/pkg/errs"
	"lockerroom/internal/pkg/guard"
)

var (
	ErrReserveLockerCommandIsNotConstructed = errors.New(
		"ReserveLockerCommand must be created via NewReserveLockerCommand constructor",
	)
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
)

// ReserveLockerCommand asks to claim a locker for a customer.
//
// Example:
//
//	cmd, err := NewReserveLockerCommand(4, "Ada Lovelace")
//	if err != nil {
//	    return fmt.Errorf("invalid reservation: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type ReserveLockerCommand struct { //nolint:recvcheck //using for validation
	lockerNumber int
	customerName string

	guard guard.ConstructorGuard
}

// NewReserveLockerCommand validates the locker number (>= 0) and the customer name
// (non-blank, surrounding spaces trimmed).
func NewReserveLockerCommand(lockerNumber int, customerName string) (ReserveLockerCommand, error) {
	command := ReserveLockerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLockerNumber(lockerNumber),
		command.setCustomerName(customerName),
	); err != nil {
		return ReserveLockerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReserveLockerCommand) Validate() error {
	return c.guard.Validate(ErrReserveLockerCommandIsNotConstructed)
}

// LockerNumber returns the locker to reserve.
func (c ReserveLockerCommand) LockerNumber() int {
	return c.lockerNumber
}

// CustomerName returns the trimmed customer name.
func (c ReserveLockerCommand) CustomerName() string {
	return c.customerName
}

func (c *ReserveLockerCommand) setLockerNumber(number int) error {
	if err := validateLockerNumber(number); err != nil {
		return err
	}
	c.lockerNumber = number
	return nil
}

func (c *ReserveLockerCommand) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	c.customerName = name
	return nil
}

// validateLockerNumber rejects numbers no registry can hold. Like an out of range
// number, a negative one names a locker that does not exist.
func validateLockerNumber(number int) error {
	if number < 0 {
		return errs.NewObjectNotFoundErrorWithCause(
			"lockerNumber",
			number,
			fmt.Errorf("%d is negative", number),
		)
	}
	return nil
}
