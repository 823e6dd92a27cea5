// Package locker models the locker room: a fixed, ordered set of lockers and the
// registry that drives their reservation, check-in, extension and check-out lifecycle.
//
// Each locker moves through three states:
//
//	Free ──Reserve──> ReservedUnoccupied ──CheckIn──> (extension decision)
//	  │                                                  │
//	  └──────CheckIn──> Occupied ──CheckOut──> Free      └─ConfirmExtension─> ReservedUnoccupied
//
// The Registry is the only entry point callers use. It serializes every operation
// behind one mutex and hands out Snapshot values, never live *Locker pointers.
package locker
