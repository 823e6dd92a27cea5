package queries

import (
	"context"

	"lockerroom/internal/core/domain/model/locker"
)

// GetAvailableLockersQueryHandler answers which lockers can be reserved or checked into.
type GetAvailableLockersQueryHandler struct {
	registry *locker.Registry
}

// NewGetAvailableLockersQueryHandler creates the handler.
func NewGetAvailableLockersQueryHandler(registry *locker.Registry) GetAvailableLockersQueryHandler {
	return GetAvailableLockersQueryHandler{registry: registry}
}

// Handle returns locker numbers in ascending order. The slice is empty, never nil,
// when nothing is free.
func (h GetAvailableLockersQueryHandler) Handle(_ context.Context, query GetAvailableLockersQuery) ([]int, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.registry.ListAvailableBySize(query.MinSize()), nil
}
