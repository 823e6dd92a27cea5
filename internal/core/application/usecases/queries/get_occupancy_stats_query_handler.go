package queries

import (
	"context"

	"lockerroom/internal/core/domain/model/locker"
	"lockerroom/internal/core/domain/services"
)

// GetOccupancyStatsQueryResponse adds the price of everything stored to the
// registry figures.
type GetOccupancyStatsQueryResponse struct {
	locker.Stats
	StoredValue float64
}

// GetOccupancyStatsQueryHandler computes stats in one registry pass.
type GetOccupancyStatsQueryHandler struct {
	registry   *locker.Registry
	calculator services.PriceCalculator
}

// NewGetOccupancyStatsQueryHandler creates the handler.
func NewGetOccupancyStatsQueryHandler(
	registry *locker.Registry,
	calculator services.PriceCalculator,
) GetOccupancyStatsQueryHandler {
	return GetOccupancyStatsQueryHandler{registry: registry, calculator: calculator}
}

// Handle returns the current figures.
func (h GetOccupancyStatsQueryHandler) Handle(
	_ context.Context,
	query GetOccupancyStatsQuery,
) (GetOccupancyStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOccupancyStatsQueryResponse{}, err
	}

	stats := h.registry.Stats()
	return GetOccupancyStatsQueryResponse{
		Stats:       stats,
		StoredValue: h.calculator.CalculatePrice(stats.TotalWeightStored),
	}, nil
}
