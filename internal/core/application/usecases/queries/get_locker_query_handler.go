package queries

import (
	"context"

	"lockerroom/internal/core/domain/model/locker"
)

// GetLockerQueryHandler returns a single locker snapshot.
type GetLockerQueryHandler struct {
	registry *locker.Registry
}

// NewGetLockerQueryHandler creates the handler.
func NewGetLockerQueryHandler(registry *locker.Registry) GetLockerQueryHandler {
	return GetLockerQueryHandler{registry: registry}
}

// Handle fails with errs.ErrObjectNotFound for an unknown number.
func (h GetLockerQueryHandler) Handle(_ context.Context, query GetLockerQuery) (locker.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return locker.Snapshot{}, err
	}
	return h.registry.Locker(query.LockerNumber())
}
