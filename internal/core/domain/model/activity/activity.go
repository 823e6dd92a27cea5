package activity

import (
	"errors"
	"fmt"
	"time"

	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/pkg/errs"
	"lockerroom/internal/pkg/guard"
)

// ErrActivityIsNotConstructed is returned when using an Activity that bypassed NewActivity.
var ErrActivityIsNotConstructed = errors.New("Activity must be created via NewActivity constructor")

// Details carries the operation specific values. Unused fields stay nil.
type Details struct {
	CustomerName  *string
	Weight        *float64
	DurationHours *int
	CheckInTime   *time.Time
	CheckOutTime  *time.Time
	Ticket        *string
}

// Activity is one journal entry.
type Activity struct {
	id           kernel.UUID
	lockerNumber int
	kind         Kind
	occurredAt   time.Time
	details      Details
	guard        guard.ConstructorGuard
}

// NewActivity validates and assembles a journal entry. Adapters use it both to record
// new entries and to restore stored ones.
func NewActivity(id kernel.UUID, lockerNumber int, kind Kind, occurredAt time.Time, details Details) (*Activity, error) {
	a := &Activity{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setLockerNumber(lockerNumber),
		a.setKind(kind),
		a.setOccurredAt(occurredAt),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks the entry was built by NewActivity.
func (a *Activity) Validate() error {
	if a == nil {
		return ErrActivityIsNotConstructed
	}
	return a.guard.Validate(ErrActivityIsNotConstructed)
}

func (a *Activity) ID() kernel.UUID       { return a.id }
func (a *Activity) LockerNumber() int     { return a.lockerNumber }
func (a *Activity) Kind() Kind            { return a.kind }
func (a *Activity) OccurredAt() time.Time { return a.occurredAt }
func (a *Activity) Details() Details      { return a.details }

func (a *Activity) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Activity) setLockerNumber(number int) error {
	if number < 0 {
		return errs.NewValueIsInvalidErrorWithCause("lockerNumber is invalid", fmt.Errorf("%d is negative", number))
	}
	a.lockerNumber = number
	return nil
}

func (a *Activity) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	a.kind = kind
	return nil
}

func (a *Activity) setOccurredAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt")
	}
	a.occurredAt = at
	return nil
}
