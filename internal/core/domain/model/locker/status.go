package locker

// Status is the lifecycle state of a locker, derived from its available and reserved flags.
type Status int

const (
	// Unknown marks a flag combination the registry never produces.
	Unknown Status = iota

	// Free lockers hold nothing and are not claimed. Initial state.
	Free

	// ReservedUnoccupied lockers are claimed by a customer but hold no goods yet.
	ReservedUnoccupied

	// Occupied lockers hold goods for a booked window.
	Occupied
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		Free:               "Free",
		ReservedUnoccupied: "ReservedUnoccupied",
		Occupied:           "Occupied",
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// statusOf maps the raw flags onto a Status.
func statusOf(available, reserved bool) Status {
	switch {
	case available && !reserved:
		return Free
	case available && reserved:
		return ReservedUnoccupied
	case !available && reserved:
		return Occupied
	default:
		return Unknown
	}
}
