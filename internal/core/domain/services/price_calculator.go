package services

import (
	"fmt"
	"math"

	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/pkg/errs"
)

// DefaultUnitRate is the price of one weight unit when no rate is configured.
const DefaultUnitRate = 2.0

// PriceCalculator prices goods by weight: price = weight * unit rate.
// It touches no locker state.
type PriceCalculator struct {
	unitRate float64
}

// NewPriceCalculator creates a calculator for unitRate currency units per weight unit.
// The rate must be a finite, non-negative number.
func NewPriceCalculator(unitRate float64) (PriceCalculator, error) {
	if math.IsNaN(unitRate) || math.IsInf(unitRate, 0) || unitRate < 0 {
		return PriceCalculator{}, errs.NewValueIsInvalidErrorWithCause(
			"unitRate is invalid",
			fmt.Errorf("%v is not a non-negative finite number", unitRate),
		)
	}
	return PriceCalculator{unitRate: unitRate}, nil
}

// UnitRate returns the configured rate.
func (c PriceCalculator) UnitRate() float64 {
	return c.unitRate
}

// CalculatePrice returns the price for storing weight.
func (c PriceCalculator) CalculatePrice(weight kernel.Weight) float64 {
	return weight.Units() * c.unitRate
}
