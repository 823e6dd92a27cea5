// Package errs provides the typed errors shared by the locker room service.
//
// Each error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired) with a struct carrying the details,
// so callers can branch with errors.Is and still render a precise message:
//
//	_, err := registry.Locker(42)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown locker number
//	}
package errs
