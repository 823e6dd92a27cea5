package commands

import (
	"errors"
	"fmt"
	"time"

	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/core/domain/model/locker"
	"lockerroom/internal/pkg/errs"
	"lockerroom/internal/pkg/guard"
)

var (
	ErrCheckInLockerCommandIsNotConstructed = errors.New(
		"CheckInLockerCommand must be created via NewCheckInLockerCommand constructor",
	)
	ErrCheckInTimeIsRequired = errs.NewValueIsRequiredError("checkInTime")
)

// CheckInLockerCommand asks to place goods into a locker for a booked window.
// The "check-in time is in the future" rule is left to the registry, which owns the clock.
type CheckInLockerCommand struct { //nolint:recvcheck //using for validation
	lockerNumber  int
	weight        kernel.Weight
	checkInTime   time.Time
	durationHours int

	guard guard.ConstructorGuard
}

// NewCheckInLockerCommand validates a non-negative weight, a set check-in time and a
// duration of 1 to locker.MaxDurationHours whole hours.
func NewCheckInLockerCommand(
	lockerNumber int,
	weight float64,
	checkInTime time.Time,
	durationHours int,
) (CheckInLockerCommand, error) {
	command := CheckInLockerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLockerNumber(lockerNumber),
		command.setWeight(weight),
		command.setCheckInTime(checkInTime),
		command.setDurationHours(durationHours),
	); err != nil {
		return CheckInLockerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckInLockerCommand) Validate() error {
	return c.guard.Validate(ErrCheckInLockerCommandIsNotConstructed)
}

func (c CheckInLockerCommand) LockerNumber() int      { return c.lockerNumber }
func (c CheckInLockerCommand) Weight() kernel.Weight  { return c.weight }
func (c CheckInLockerCommand) CheckInTime() time.Time { return c.checkInTime }
func (c CheckInLockerCommand) DurationHours() int     { return c.durationHours }

func (c *CheckInLockerCommand) setLockerNumber(number int) error {
	if err := validateLockerNumber(number); err != nil {
		return err
	}
	c.lockerNumber = number
	return nil
}

func (c *CheckInLockerCommand) setWeight(units float64) error {
	w, err := kernel.NewWeight(units)
	if err != nil {
		return err
	}
	c.weight = w
	return nil
}

func (c *CheckInLockerCommand) setCheckInTime(at time.Time) error {
	if at.IsZero() {
		return ErrCheckInTimeIsRequired
	}
	c.checkInTime = at
	return nil
}

func (c *CheckInLockerCommand) setDurationHours(hours int) error {
	if hours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"durationHours is invalid",
			fmt.Errorf("%d is not greater than 0", hours),
		)
	}
	if hours > locker.MaxDurationHours {
		return errs.NewValueIsOutOfRangeError("durationHours", hours, 1, locker.MaxDurationHours)
	}
	c.durationHours = hours
	return nil
}
