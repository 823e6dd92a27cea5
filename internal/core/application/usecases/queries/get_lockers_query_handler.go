package queries

import (
	"context"

	"lockerroom/internal/core/domain/model/locker"
)

// GetLockersQueryHandler reads snapshots straight from the registry.
type GetLockersQueryHandler struct {
	registry *locker.Registry
}

// NewGetLockersQueryHandler creates the handler.
func NewGetLockersQueryHandler(registry *locker.Registry) GetLockersQueryHandler {
	return GetLockersQueryHandler{registry: registry}
}

// Handle returns all lockers ordered by number.
func (h GetLockersQueryHandler) Handle(_ context.Context, query GetLockersQuery) ([]locker.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.registry.Lockers(), nil
}
