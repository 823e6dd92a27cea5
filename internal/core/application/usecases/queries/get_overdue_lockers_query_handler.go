package queries

import (
	"context"

	"lockerroom/internal/core/domain/model/locker"
)

// GetOverdueLockersQueryHandler is used by the overdue scan job.
type GetOverdueLockersQueryHandler struct {
	registry *locker.Registry
}

// NewGetOverdueLockersQueryHandler creates the handler.
func NewGetOverdueLockersQueryHandler(registry *locker.Registry) GetOverdueLockersQueryHandler {
	return GetOverdueLockersQueryHandler{registry: registry}
}

// Handle compares checkout times against the registry clock.
func (h GetOverdueLockersQueryHandler) Handle(_ context.Context, query GetOverdueLockersQuery) ([]locker.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.registry.Overdue(), nil
}
