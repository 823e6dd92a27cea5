// Package queries contains read operations over the locker room.
// Locker state is answered from the registry; history comes from the activity journal.
package queries

import (
	"errors"

	"lockerroom/internal/pkg/guard"
)

var ErrGetLockersQueryIsNotConstructed = errors.New(
	"GetLockersQuery must be created via NewGetLockersQuery constructor",
)

// GetLockersQuery lists every locker with its current state.
//
// Example:
//
//	query := NewGetLockersQuery()
//	handler := NewGetLockersQueryHandler(registry)
//
//	lockers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list lockers: %w", err)
//	}
//	for _, l := range lockers {
//	    fmt.Printf("locker %d (size %d): %s\n", l.Number, l.Size, l.Status)
//	}
type GetLockersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLockersQuery creates the query. It has no parameters.
func NewGetLockersQuery() GetLockersQuery {
	return GetLockersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLockersQuery) Validate() error {
	return q.guard.Validate(ErrGetLockersQueryIsNotConstructed)
}
