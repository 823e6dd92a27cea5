package activity

import (
	"fmt"

	"lockerroom/internal/pkg/errs"
)

// Kind names the operation an Activity records.
type Kind int

const (
	// UnknownKind catches uninitialized values.
	UnknownKind Kind = iota
	Reserved
	CheckedIn
	ExtensionRequested
	Extended
	ExtensionDeclined
	ExtensionExpired
	CheckedOut
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:        "Unknown",
		Reserved:           "Reserved",
		CheckedIn:          "CheckedIn",
		ExtensionRequested: "ExtensionRequested",
		Extended:           "Extended",
		ExtensionDeclined:  "ExtensionDeclined",
		ExtensionExpired:   "ExtensionExpired",
		CheckedOut:         "CheckedOut",
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects UnknownKind and out-of-range values.
func (k Kind) Validate() error {
	if k <= UnknownKind || k > CheckedOut {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// KindFromString parses the String form, as stored by the journal adapters.
func KindFromString(s string) (Kind, error) {
	for k, str := range getKindStrings() {
		if str == s && k != UnknownKind {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%q is not a valid kind", s))
}
