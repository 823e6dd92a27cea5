// Package activity models the locker journal: one Activity per successful
// mutation of the registry (reservation, check-in, extension, check-out).
//
// Activities are append-only. They document what happened; the registry never
// rebuilds its state from them.
package activity
