package queries

import (
	"errors"

	"lockerroom/internal/pkg/guard"
)

var ErrGetOverdueLockersQueryIsNotConstructed = errors.New(
	"GetOverdueLockersQuery must be created via NewGetOverdueLockersQuery constructor",
)

// GetOverdueLockersQuery finds occupied lockers past their checkout time.
type GetOverdueLockersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOverdueLockersQuery() GetOverdueLockersQuery {
	return GetOverdueLockersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOverdueLockersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueLockersQueryIsNotConstructed)
}
