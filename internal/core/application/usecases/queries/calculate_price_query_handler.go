package queries

import (
	"context"

	"lockerroom/internal/core/domain/services"
)

// CalculatePriceQueryResponse is a price quote.
type CalculatePriceQueryResponse struct {
	Weight   float64
	UnitRate float64
	Price    float64
}

// CalculatePriceQueryHandler delegates to the pricing service.
type CalculatePriceQueryHandler struct {
	calculator services.PriceCalculator
}

// NewCalculatePriceQueryHandler creates the handler.
func NewCalculatePriceQueryHandler(calculator services.PriceCalculator) CalculatePriceQueryHandler {
	return CalculatePriceQueryHandler{calculator: calculator}
}

// Handle returns weight * unit rate. It reads no locker state.
func (h CalculatePriceQueryHandler) Handle(_ context.Context, query CalculatePriceQuery) (CalculatePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	return CalculatePriceQueryResponse{
		Weight:   query.Weight().Units(),
		UnitRate: h.calculator.UnitRate(),
		Price:    h.calculator.CalculatePrice(query.Weight()),
	}, nil
}
