package queries

import (
	"errors"

	"lockerroom/internal/pkg/guard"
)

var ErrGetOccupancyStatsQueryIsNotConstructed = errors.New(
	"GetOccupancyStatsQuery must be created via NewGetOccupancyStatsQuery constructor",
)

// GetOccupancyStatsQuery asks for room wide occupancy figures.
type GetOccupancyStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOccupancyStatsQuery() GetOccupancyStatsQuery {
	return GetOccupancyStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOccupancyStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOccupancyStatsQueryIsNotConstructed)
}
