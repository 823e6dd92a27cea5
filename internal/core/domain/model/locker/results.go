package locker

import (
	"time"

	"lockerroom/internal/core/domain/model/kernel"
)

// Messages returned alongside successful operations.
const (
	MessagePreBooked         = "Goods pre-booked successfully."
	MessageExtensionRequired = "This locker is already reserved. Do you want to extend the reservation?"
	MessageExtended          = "Reservation extended successfully."
	MessageCheckedOut        = "Checked out successfully."
	MessageReserved          = "Locker reserved successfully."
)

// CheckInOutcome tells the caller which branch a check-in took.
type CheckInOutcome int

const (
	// PreBooked means the locker is now Occupied and a ticket was issued.
	PreBooked CheckInOutcome = iota + 1

	// ExtensionRequired means the locker was ReservedUnoccupied. Nothing changed
	// except a pending request; the caller must answer it with ConfirmExtension.
	ExtensionRequired
)

func (o CheckInOutcome) String() string {
	switch o {
	case PreBooked:
		return "PreBooked"
	case ExtensionRequired:
		return "ExtensionRequired"
	default:
		return "Unknown"
	}
}

// CheckInResult is returned by a successful CheckIn.
// Ticket and CheckOutTime are set only for PreBooked.
type CheckInResult struct {
	Number       int
	Outcome      CheckInOutcome
	Ticket       *kernel.UUID
	CheckOutTime *time.Time
	Message      string
}

// ExtensionResult is returned when a pending extension was applied.
type ExtensionResult struct {
	Number        int
	AddedHours    int
	DurationHours int
	CheckOutTime  time.Time
	Message       string
}

// CheckOutResult is returned by a successful CheckOut.
type CheckOutResult struct {
	Number       int
	Ticket       *kernel.UUID
	Weight       kernel.Weight
	CheckedOutAt time.Time
	Message      string
}

// Stats aggregates the registry occupancy.
type Stats struct {
	TotalLockers       int
	SpaceAvailable     int
	Occupied           int
	ReservedUnoccupied int
	TotalWeightStored  kernel.Weight
}

// Snapshot is a point-in-time copy of a locker. Pointer fields are fresh copies,
// so holding a Snapshot never aliases registry state.
type Snapshot struct {
	Number           int
	Size             int
	Status           Status
	Available        bool
	Reserved         bool
	Weight           kernel.Weight
	CustomerName     *string
	CheckInTime      *time.Time
	CheckOutTime     *time.Time
	DurationHours    *int
	Ticket           *kernel.UUID
	ExtensionPending bool
}
