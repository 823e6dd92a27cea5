// Package services provides domain services of the locker room that do not belong to
// a single locker.
//
// The package includes:
//   - PriceCalculator: prices stored goods by weight at a configured unit rate
package services
