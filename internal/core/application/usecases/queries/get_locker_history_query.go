package queries

import (
	"errors"
	"fmt"

	"lockerroom/internal/pkg/errs"
	"lockerroom/internal/pkg/guard"
)

// DefaultHistoryLimit caps history responses when the caller sets no limit.
const DefaultHistoryLimit = 50

var ErrGetLockerHistoryQueryIsNotConstructed = errors.New(
	"GetLockerHistoryQuery must be created via NewGetLockerHistoryQuery constructor",
)

// GetLockerHistoryQuery reads the journal of one locker, newest entry first.
type GetLockerHistoryQuery struct {
	lockerNumber int
	limit        int

	guard guard.ConstructorGuard
}

// NewGetLockerHistoryQuery uses DefaultHistoryLimit when limit is 0.
func NewGetLockerHistoryQuery(lockerNumber, limit int) (GetLockerHistoryQuery, error) {
	query := GetLockerHistoryQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setLockerNumber(lockerNumber),
		query.setLimit(limit),
	); err != nil {
		return GetLockerHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLockerHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetLockerHistoryQueryIsNotConstructed)
}

func (q GetLockerHistoryQuery) LockerNumber() int { return q.lockerNumber }
func (q GetLockerHistoryQuery) Limit() int        { return q.limit }

func (q *GetLockerHistoryQuery) setLockerNumber(number int) error {
	if err := validateLockerNumber(number); err != nil {
		return err
	}
	q.lockerNumber = number
	return nil
}

func (q *GetLockerHistoryQuery) setLimit(limit int) error {
	if limit < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"limit is invalid",
			fmt.Errorf("%d is negative", limit),
		)
	}
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	q.limit = limit
	return nil
}
