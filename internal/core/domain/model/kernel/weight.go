package kernel

import (
	"errors"
	"fmt"
	"math"

	"lockerroom/internal/pkg/errs"
	"lockerroom/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when a zero Weight value is validated.
var ErrWeightIsNotConstructed = errors.New("Weight must be created via NewWeight or ZeroWeight")

// MaxWeightUnits bounds a single Weight so that sums over a room stay finite.
const MaxWeightUnits = 1e6

// Weight is the non-negative weight of goods stored in a locker, in weight units
// (the unit the tariff is priced in).
type Weight struct {
	units float64
	guard guard.ConstructorGuard
}

// NewWeight validates units and returns the corresponding Weight.
// Negative, NaN and infinite amounts are rejected, and so is anything above MaxWeightUnits.
func NewWeight(units float64) (Weight, error) {
	if math.IsNaN(units) || math.IsInf(units, 0) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid",
			fmt.Errorf("%v is not a finite number", units),
		)
	}
	if units < 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid",
			fmt.Errorf("%v is negative", units),
		)
	}
	if units > MaxWeightUnits {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", units, 0, MaxWeightUnits)
	}

	return Weight{units: units, guard: guard.NewConstructorGuard()}, nil
}

// MustNewWeight is NewWeight for literals known to be valid. It panics otherwise.
func MustNewWeight(units float64) Weight {
	w, err := NewWeight(units)
	if err != nil {
		panic(err)
	}
	return w
}

// ZeroWeight is the weight of an empty locker.
func ZeroWeight() Weight {
	return Weight{guard: guard.NewConstructorGuard()}
}

// Units returns the amount as a float.
func (w Weight) Units() float64 {
	return w.units
}

// IsZero reports whether nothing is stored.
func (w Weight) IsZero() bool {
	return w.units == 0
}

// Add returns the sum of both weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{units: w.units + other.units, guard: guard.NewConstructorGuard()}
}

// IsEqual compares the amounts.
func (w Weight) IsEqual(other Weight) bool {
	return w.units == other.units
}

// Validate fails for zero values that did not go through a constructor.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

func (w Weight) String() string {
	return fmt.Sprintf("%g", w.units)
}
