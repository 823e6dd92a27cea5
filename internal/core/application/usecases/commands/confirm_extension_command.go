package commands

import (
	"errors"

	"lockerroom/internal/pkg/guard"
)

var ErrConfirmExtensionCommandIsNotConstructed = errors.New(
	"ConfirmExtensionCommand must be created via NewConfirmExtensionCommand constructor",
)

// ConfirmExtensionCommand answers the extension question raised by a check-in on a
// reserved locker.
type ConfirmExtensionCommand struct { //nolint:recvcheck //using for validation
	lockerNumber int
	extend       bool

	guard guard.ConstructorGuard
}

// NewConfirmExtensionCommand creates the answer for lockerNumber.
func NewConfirmExtensionCommand(lockerNumber int, extend bool) (ConfirmExtensionCommand, error) {
	command := ConfirmExtensionCommand{
		extend: extend,
		guard:  guard.NewConstructorGuard(),
	}

	if err := validateLockerNumber(lockerNumber); err != nil {
		return ConfirmExtensionCommand{}, err
	}
	command.lockerNumber = lockerNumber

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmExtensionCommand) Validate() error {
	return c.guard.Validate(ErrConfirmExtensionCommandIsNotConstructed)
}

// LockerNumber returns the locker the decision is for.
func (c ConfirmExtensionCommand) LockerNumber() int {
	return c.lockerNumber
}

// Extend reports whether the customer accepted the extension.
func (c ConfirmExtensionCommand) Extend() bool {
	return c.extend
}
