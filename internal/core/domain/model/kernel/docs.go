// Package kernel provides the value objects shared by the locker room domain:
//
//   - UUID: identifiers for check-in tickets and journal entries
//   - Weight: a non-negative amount of stored goods
//   - Clock: the time source the registry consults for "now"
//
// Values are immutable and safe to copy between goroutines.
package kernel
