package queries

import (
	"context"
	"time"

	"lockerroom/internal/core/domain/model/activity"
	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/core/domain/model/locker"
	"lockerroom/internal/core/ports"
)

// GetLockerHistoryQueryResponse is one journal entry in read model form.
type GetLockerHistoryQueryResponse struct {
	ID           kernel.UUID
	LockerNumber int
	Kind         string
	OccurredAt   time.Time
	Details      activity.Details
}

// GetLockerHistoryQueryHandler reads the activity journal.
//
// Example:
//
//	query, _ := NewGetLockerHistoryQuery(3, 10)
//	entries, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such locker
//	}
type GetLockerHistoryQueryHandler struct {
	registry *locker.Registry
	repo     ports.ActivityRepository
}

// NewGetLockerHistoryQueryHandler creates the handler.
func NewGetLockerHistoryQueryHandler(registry *locker.Registry, repo ports.ActivityRepository) GetLockerHistoryQueryHandler {
	return GetLockerHistoryQueryHandler{registry: registry, repo: repo}
}

// Handle checks the locker exists before touching the journal, so unknown numbers
// fail with errs.ErrObjectNotFound rather than an empty history.
func (h GetLockerHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetLockerHistoryQuery,
) ([]GetLockerHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.registry.Locker(query.LockerNumber()); err != nil {
		return nil, err
	}

	entries, err := h.repo.ListByLocker(ctx, query.LockerNumber(), query.Limit())
	if err != nil {
		return nil, err
	}

	history := make([]GetLockerHistoryQueryResponse, 0, len(entries))
	for _, e := range entries {
		history = append(history, GetLockerHistoryQueryResponse{
			ID:           e.ID(),
			LockerNumber: e.LockerNumber(),
			Kind:         e.Kind().String(),
			OccurredAt:   e.OccurredAt(),
			Details:      e.Details(),
		})
	}
	return history, nil
}
