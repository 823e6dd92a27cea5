package locker

import (
	"errors"
	"fmt"
	"time"

	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/pkg/errs"
	"lockerroom/internal/pkg/guard"
)

// Domain errors for locker operations.
var (
	// ErrAlreadyReserved is returned when reserving a locker someone already claimed.
	ErrAlreadyReserved = errors.New("locker is already reserved")
	// ErrAlreadyOccupied is returned when the locker already holds goods.
	ErrAlreadyOccupied = errors.New("locker is already occupied")
	// ErrAlreadyAvailable is returned when checking out a locker that holds nothing.
	ErrAlreadyAvailable = errors.New("the locker is already available")
	// ErrCheckInTimeNotFuture is returned when the requested check-in is not after now.
	ErrCheckInTimeNotFuture = errors.New("check-in time must be in the future")
	// ErrExtensionDeclined is returned when the caller answers an extension request with no.
	ErrExtensionDeclined = errors.New("reservation not extended")
	// ErrNoPendingExtension is returned by ConfirmExtension when no check-in asked for a decision.
	ErrNoPendingExtension = errors.New("no extension decision is pending for this locker")
	// ErrLockerIsNotConstructed is returned when using a Locker that bypassed NewLocker.
	ErrLockerIsNotConstructed = errors.New("Locker must be created via NewLocker constructor")
)

// MaxDurationHours caps one booking, extensions included, at ten years.
const MaxDurationHours = 10 * 365 * 24

// extensionRequest is what a check-in on a ReservedUnoccupied locker leaves behind
// until the caller decides.
type extensionRequest struct {
	hours       int
	checkInTime time.Time
	requestedAt time.Time
}

// Locker is one physical storage slot.
//
// Business rules:
//   - number and size never change after construction
//   - a Free locker stores no weight, no customer, no duration and no ticket
//   - while Occupied, checkOutTime equals checkInTime plus durationHours hours
//   - a check-in on a ReservedUnoccupied locker never occupies it; it only records an
//     extension request that ConfirmExtension resolves
//
// Locker is not safe for concurrent use; the Registry serializes access.
type Locker struct {
	number        int
	size          int
	available     bool
	reserved      bool
	weight        kernel.Weight
	customerName  *string
	checkInTime   *time.Time
	checkOutTime  *time.Time
	durationHours *int
	ticket        *kernel.UUID
	pending       *extensionRequest
	guard         guard.ConstructorGuard
}

// NewLocker creates a Free locker.
//
// Parameters:
//   - number: position in the room layout (must be >= 0)
//   - size: capacity class (must be > 0)
func NewLocker(number, size int) (*Locker, error) {
	l := &Locker{
		available: true,
		weight:    kernel.ZeroWeight(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setNumber(number),
		l.setSize(size),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate checks the locker was built by NewLocker.
func (l *Locker) Validate() error {
	if l == nil {
		return ErrLockerIsNotConstructed
	}
	return l.guard.Validate(ErrLockerIsNotConstructed)
}

// Number returns the locker number.
func (l *Locker) Number() int {
	return l.number
}

// Size returns the capacity class.
func (l *Locker) Size() int {
	return l.size
}

// Status derives the lifecycle state from the flags.
func (l *Locker) Status() Status {
	return statusOf(l.available, l.reserved)
}

// IsAvailable reports whether the locker holds no goods.
func (l *Locker) IsAvailable() bool {
	return l.available
}

// Weight returns the stored weight; zero for available lockers.
func (l *Locker) Weight() kernel.Weight {
	return l.weight
}

// Ticket returns the handle issued by the current check-in, if any.
func (l *Locker) Ticket() *kernel.UUID {
	return l.ticket
}

// Reserve claims a Free locker for customerName. Available stays true.
// Reservation is not re-entrant: a second call fails with ErrAlreadyReserved.
func (l *Locker) Reserve(customerName string) error {
	if !l.available {
		return ErrAlreadyOccupied
	}
	if l.reserved {
		return ErrAlreadyReserved
	}

	l.reserved = true
	l.customerName = &customerName
	return nil
}

// CheckIn places goods into the locker for durationHours starting at checkInTime.
//
// The checks run in this order, which is observable by callers:
// durationHours must lie in [1, MaxDurationHours]; anything else fails with
// errs.ErrValueIsOutOfRange before the checks below run.
//
//  1. ReservedUnoccupied: record an extension request and return ExtensionRequired.
//     The time window is not validated on this branch.
//  2. checkInTime not strictly after now: ErrCheckInTimeNotFuture.
//  3. Already Occupied: ErrAlreadyOccupied.
//  4. Occupy the locker, issue a ticket and return PreBooked.
//
// weight is taken as given; callers validate it.
func (l *Locker) CheckIn(weight kernel.Weight, checkInTime time.Time, durationHours int, now time.Time) (CheckInResult, error) {
	if err := validateDurationHours(durationHours); err != nil {
		return CheckInResult{}, err
	}

	if l.Status() == ReservedUnoccupied {
		l.pending = &extensionRequest{
			hours:       durationHours,
			checkInTime: checkInTime,
			requestedAt: now,
		}
		return CheckInResult{
			Number:  l.number,
			Outcome: ExtensionRequired,
			Message: MessageExtensionRequired,
		}, nil
	}

	if !checkInTime.After(now) {
		return CheckInResult{}, ErrCheckInTimeNotFuture
	}

	if !l.available {
		return CheckInResult{}, ErrAlreadyOccupied
	}

	checkOutTime := checkInTime.Add(hours(durationHours))
	ticket := kernel.NewUUID()

	l.available = false
	l.reserved = true
	l.weight = weight
	l.checkInTime = &checkInTime
	l.durationHours = &durationHours
	l.checkOutTime = &checkOutTime
	l.ticket = &ticket

	return CheckInResult{
		Number:       l.number,
		Outcome:      PreBooked,
		Ticket:       copyUUID(&ticket),
		CheckOutTime: copyTime(&checkOutTime),
		Message:      MessagePreBooked,
	}, nil
}

// ConfirmExtension resolves the request left by CheckIn.
//
// With extend set, the requested hours are added to the booking and the checkout time
// moves forward by the same amount. A reservation without a booking window starts one
// at the check-in time that was requested. Declining returns ErrExtensionDeclined and
// leaves every field as it was. Either way the request is consumed, except when the
// extended booking would exceed MaxDurationHours: that fails with errs.ErrValueIsOutOfRange
// and the request stays pending so the caller can still decline it.
func (l *Locker) ConfirmExtension(extend bool) (ExtensionResult, error) {
	if l.pending == nil {
		return ExtensionResult{}, ErrNoPendingExtension
	}

	if extend {
		total := l.pending.hours
		if l.durationHours != nil {
			total += *l.durationHours
		}
		if err := validateDurationHours(total); err != nil {
			return ExtensionResult{}, err
		}
	}

	req := *l.pending
	l.pending = nil

	if !extend {
		return ExtensionResult{}, ErrExtensionDeclined
	}

	if l.durationHours == nil || l.checkOutTime == nil {
		start := req.checkInTime
		end := start.Add(hours(req.hours))
		d := req.hours
		l.checkInTime = &start
		l.checkOutTime = &end
		l.durationHours = &d
	} else {
		d := *l.durationHours + req.hours
		end := l.checkOutTime.Add(hours(req.hours))
		l.durationHours = &d
		l.checkOutTime = &end
	}

	return ExtensionResult{
		Number:        l.number,
		AddedHours:    req.hours,
		DurationHours: *l.durationHours,
		CheckOutTime:  *l.checkOutTime,
		Message:       MessageExtended,
	}, nil
}

// CheckOut releases the goods and returns the locker to Free.
// The reservation and the stored weight are cleared too; checkOutTime records now.
func (l *Locker) CheckOut(now time.Time) (CheckOutResult, error) {
	if l.available {
		return CheckOutResult{}, ErrAlreadyAvailable
	}

	result := CheckOutResult{
		Number:       l.number,
		Ticket:       copyUUID(l.ticket),
		Weight:       l.weight,
		CheckedOutAt: now,
		Message:      MessageCheckedOut,
	}

	l.available = true
	l.reserved = false
	l.weight = kernel.ZeroWeight()
	l.checkOutTime = &now
	l.customerName = nil
	l.durationHours = nil
	l.ticket = nil
	l.pending = nil

	return result, nil
}

// IsOverdue reports whether an Occupied locker passed its checkout time.
func (l *Locker) IsOverdue(now time.Time) bool {
	return !l.available && l.checkOutTime != nil && l.checkOutTime.Before(now)
}

// ExpirePendingExtension drops an extension request older than maxAge.
// It reports whether a request was dropped.
func (l *Locker) ExpirePendingExtension(now time.Time, maxAge time.Duration) bool {
	if l.pending == nil || now.Sub(l.pending.requestedAt) < maxAge {
		return false
	}
	l.pending = nil
	return true
}

// Snapshot copies the locker state.
func (l *Locker) Snapshot() Snapshot {
	return Snapshot{
		Number:           l.number,
		Size:             l.size,
		Status:           l.Status(),
		Available:        l.available,
		Reserved:         l.reserved,
		Weight:           l.weight,
		CustomerName:     copyString(l.customerName),
		CheckInTime:      copyTime(l.checkInTime),
		CheckOutTime:     copyTime(l.checkOutTime),
		DurationHours:    copyInt(l.durationHours),
		Ticket:           copyUUID(l.ticket),
		ExtensionPending: l.pending != nil,
	}
}

func (l *Locker) setNumber(number int) error {
	if number < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"number is invalid",
			fmt.Errorf("%d is negative", number),
		)
	}
	l.number = number
	return nil
}

func (l *Locker) setSize(size int) error {
	if size <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"size is invalid",
			fmt.Errorf("%d is not greater than 0", size),
		)
	}
	l.size = size
	return nil
}

func validateDurationHours(n int) error {
	if n < 1 || n > MaxDurationHours {
		return errs.NewValueIsOutOfRangeError("durationHours", n, 1, MaxDurationHours)
	}
	return nil
}

func hours(n int) time.Duration {
	return time.Duration(n) * time.Hour
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

func copyUUID(u *kernel.UUID) *kernel.UUID {
	if u == nil {
		return nil
	}
	v := *u
	return &v
}
