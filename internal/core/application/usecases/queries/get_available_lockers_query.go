package queries

import (
	"errors"
	"fmt"

	"lockerroom/internal/pkg/errs"
	"lockerroom/internal/pkg/guard"
)

var ErrGetAvailableLockersQueryIsNotConstructed = errors.New(
	"GetAvailableLockersQuery must be created via NewGetAvailableLockersQuery constructor",
)

// GetAvailableLockersQuery lists Free lockers, optionally only those of at least minSize.
type GetAvailableLockersQuery struct {
	minSize int

	guard guard.ConstructorGuard
}

// NewGetAvailableLockersQuery accepts minSize 0 for "any size".
func NewGetAvailableLockersQuery(minSize int) (GetAvailableLockersQuery, error) {
	if minSize < 0 {
		return GetAvailableLockersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"minSize is invalid",
			fmt.Errorf("%d is negative", minSize),
		)
	}
	return GetAvailableLockersQuery{
		minSize: minSize,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableLockersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableLockersQueryIsNotConstructed)
}

// MinSize returns the smallest acceptable locker size.
func (q GetAvailableLockersQuery) MinSize() int {
	return q.minSize
}
