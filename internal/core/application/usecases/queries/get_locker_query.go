package queries

import (
	"errors"
	"fmt"

	"lockerroom/internal/pkg/errs"
	"lockerroom/internal/pkg/guard"
)

var ErrGetLockerQueryIsNotConstructed = errors.New(
	"GetLockerQuery must be created via NewGetLockerQuery constructor",
)

// GetLockerQuery fetches one locker by number.
type GetLockerQuery struct {
	lockerNumber int

	guard guard.ConstructorGuard
}

// NewGetLockerQuery requires lockerNumber >= 0. Numbers past the end of the room are
// reported by the handler as not found.
func NewGetLockerQuery(lockerNumber int) (GetLockerQuery, error) {
	if err := validateLockerNumber(lockerNumber); err != nil {
		return GetLockerQuery{}, err
	}
	return GetLockerQuery{
		lockerNumber: lockerNumber,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLockerQuery) Validate() error {
	return q.guard.Validate(ErrGetLockerQueryIsNotConstructed)
}

// LockerNumber returns the requested locker.
func (q GetLockerQuery) LockerNumber() int {
	return q.lockerNumber
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
