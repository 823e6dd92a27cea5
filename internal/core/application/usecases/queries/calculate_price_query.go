package queries

import (
	"errors"

	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/pkg/guard"
)

var ErrCalculatePriceQueryIsNotConstructed = errors.New(
	"CalculatePriceQuery must be created via NewCalculatePriceQuery constructor",
)

// CalculatePriceQuery quotes the storage price for a weight.
//
// Example:
//
//	query, err := NewCalculatePriceQuery(7.5)
//	if err != nil {
//	    return err
//	}
//	quote, _ := handler.Handle(ctx, query)
//	fmt.Printf("%.2f at %.2f per unit\n", quote.Price, quote.UnitRate)
type CalculatePriceQuery struct {
	weight kernel.Weight

	guard guard.ConstructorGuard
}

// NewCalculatePriceQuery rejects negative, non-finite and oversized weights.
func NewCalculatePriceQuery(weight float64) (CalculatePriceQuery, error) {
	w, err := kernel.NewWeight(weight)
	if err != nil {
		return CalculatePriceQuery{}, err
	}
	return CalculatePriceQuery{
		weight: w,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculatePriceQuery) Validate() error {
	return q.guard.Validate(ErrCalculatePriceQueryIsNotConstructed)
}

// Weight returns the weight to price.
func (q CalculatePriceQuery) Weight() kernel.Weight {
	return q.weight
}
