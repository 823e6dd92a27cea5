package locker

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/pkg/errs"
	"lockerroom/internal/pkg/guard"
)

var (
	// ErrRegistryHasNoLockers is returned when the size list is empty.
	ErrRegistryHasNoLockers = errs.NewValueIsRequiredError("locker sizes")
	// ErrRegistryIsNotConstructed is returned when using a Registry that bypassed NewRegistry.
	ErrRegistryIsNotConstructed = errors.New("Registry must be created via NewRegistry constructor")
)

// Registry owns the lockers of one room, indexed by locker number.
//
// The set of lockers is fixed at construction: locker i has size sizes[i] and keeps
// number i for the lifetime of the registry. All methods are safe for concurrent use;
// a single mutex serializes them, which keeps Reserve, CheckIn and CheckOut on the same
// locker free of lost updates.
//
// Example:
//
//	registry, err := locker.NewRegistry([]int{1, 2, 3}, kernel.SystemClock{})
//	if err != nil {
//	    return err
//	}
//	res, err := registry.CheckIn(0, kernel.MustNewWeight(5), time.Now().Add(time.Hour), 2)
//	// res.Ticket identifies this stay; pass it to CheckOutByTicket later
type Registry struct {
	mu      sync.Mutex
	lockers []*Locker
	tickets map[kernel.UUID]int
	clock   kernel.Clock
	guard   guard.ConstructorGuard
}

// NewRegistry builds one Free locker per entry of sizes.
// Every size must be positive; all invalid sizes are reported together.
// A nil clock falls back to the wall clock.
func NewRegistry(sizes []int, clock kernel.Clock) (*Registry, error) {
	if len(sizes) == 0 {
		return nil, ErrRegistryHasNoLockers
	}
	if clock == nil {
		clock = kernel.SystemClock{}
	}

	lockers := make([]*Locker, 0, len(sizes))
	var sizeErrs []error
	for number, size := range sizes {
		l, err := NewLocker(number, size)
		if err != nil {
			sizeErrs = append(sizeErrs, fmt.Errorf("locker %d: %w", number, err))
			continue
		}
		lockers = append(lockers, l)
	}
	if err := errors.Join(sizeErrs...); err != nil {
		return nil, err
	}

	return &Registry{
		lockers: lockers,
		tickets: make(map[kernel.UUID]int),
		clock:   clock,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the registry was built by NewRegistry.
func (r *Registry) Validate() error {
	if r == nil {
		return ErrRegistryIsNotConstructed
	}
	return r.guard.Validate(ErrRegistryIsNotConstructed)
}

// Now returns the registry clock reading.
func (r *Registry) Now() time.Time {
	return r.clock.Now()
}

// Len returns the number of lockers. It never changes.
func (r *Registry) Len() int {
	return len(r.lockers)
}

// ListAvailable returns the numbers of all Free lockers in ascending order.
func (r *Registry) ListAvailable() []int {
	return r.ListAvailableBySize(0)
}

// ListAvailableBySize is ListAvailable restricted to lockers of at least minSize.
func (r *Registry) ListAvailableBySize(minSize int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	numbers := make([]int, 0, len(r.lockers))
	for _, l := range r.lockers {
		if l.Status() == Free && l.Size() >= minSize {
			numbers = append(numbers, l.Number())
		}
	}
	return numbers
}

// Reserve claims a Free locker for customerName.
// Fails with a not found error, ErrAlreadyOccupied or ErrAlreadyReserved.
func (r *Registry) Reserve(number int, customerName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, err := r.lookup(number)
	if err != nil {
		return err
	}
	return l.Reserve(customerName)
}

// CheckIn places goods into a locker. See Locker.CheckIn for the order of the checks.
// On PreBooked the returned ticket resolves to the locker until it is checked out.
func (r *Registry) CheckIn(number int, weight kernel.Weight, checkInTime time.Time, durationHours int) (CheckInResult, error) {
	if err := weight.Validate(); err != nil {
		return CheckInResult{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	l, err := r.lookup(number)
	if err != nil {
		return CheckInResult{}, err
	}

	result, err := l.CheckIn(weight, checkInTime, durationHours, r.clock.Now())
	if err != nil {
		return CheckInResult{}, err
	}

	if result.Ticket != nil {
		r.tickets[*result.Ticket] = number
	}
	return result, nil
}

// ConfirmExtension answers the extension request left by CheckIn on a
// ReservedUnoccupied locker.
func (r *Registry) ConfirmExtension(number int, extend bool) (ExtensionResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, err := r.lookup(number)
	if err != nil {
		return ExtensionResult{}, err
	}
	return l.ConfirmExtension(extend)
}

// CheckOut releases locker number and returns it to Free.
func (r *Registry) CheckOut(number int) (CheckOutResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, err := r.lookup(number)
	if err != nil {
		return CheckOutResult{}, err
	}
	return r.checkOut(l)
}

// CheckOutByTicket releases the locker the ticket was issued for.
func (r *Registry) CheckOutByTicket(ticket kernel.UUID) (CheckOutResult, error) {
	if err := ticket.Validate(); err != nil {
		return CheckOutResult{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	number, ok := r.tickets[ticket]
	if !ok {
		return CheckOutResult{}, errs.NewObjectNotFoundError("ticket", ticket.String())
	}
	return r.checkOut(r.lockers[number])
}

// ResolveTicket returns the locker number a live ticket belongs to.
func (r *Registry) ResolveTicket(ticket kernel.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	number, ok := r.tickets[ticket]
	if !ok {
		return 0, errs.NewObjectNotFoundError("ticket", ticket.String())
	}
	return number, nil
}

// SpaceAvailable counts lockers that hold no goods, reserved ones included.
func (r *Registry) SpaceAvailable() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, l := range r.lockers {
		if l.IsAvailable() {
			count++
		}
	}
	return count
}

// TotalWeightStored sums the weight held by lockers that are not available.
func (r *Registry) TotalWeightStored() kernel.Weight {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.totalWeight()
}

// Stats returns all occupancy figures computed under one lock.
func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := Stats{
		TotalLockers:      len(r.lockers),
		TotalWeightStored: r.totalWeight(),
	}
	for _, l := range r.lockers {
		switch l.Status() {
		case Free:
			stats.SpaceAvailable++
		case ReservedUnoccupied:
			stats.SpaceAvailable++
			stats.ReservedUnoccupied++
		case Occupied:
			stats.Occupied++
		case Unknown:
		}
	}
	return stats
}

// Locker returns a snapshot of one locker.
func (r *Registry) Locker(number int) (Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, err := r.lookup(number)
	if err != nil {
		return Snapshot{}, err
	}
	return l.Snapshot(), nil
}

// Lockers returns snapshots of every locker ordered by number.
func (r *Registry) Lockers() []Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Snapshot, 0, len(r.lockers))
	for _, l := range r.lockers {
		out = append(out, l.Snapshot())
	}
	return out
}

// Overdue returns the Occupied lockers whose checkout time has passed.
func (r *Registry) Overdue() []Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	out := make([]Snapshot, 0)
	for _, l := range r.lockers {
		if l.IsOverdue(now) {
			out = append(out, l.Snapshot())
		}
	}
	return out
}

// ExpirePendingExtensions drops extension requests older than maxAge and returns
// the numbers of the lockers they belonged to.
func (r *Registry) ExpirePendingExtensions(maxAge time.Duration) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	expired := make([]int, 0)
	for _, l := range r.lockers {
		if l.ExpirePendingExtension(now, maxAge) {
			expired = append(expired, l.Number())
		}
	}
	return expired
}

// lookup must be called with r.mu held.
func (r *Registry) lookup(number int) (*Locker, error) {
	if number < 0 || number >= len(r.lockers) {
		return nil, errs.NewObjectNotFoundError("lockerNumber", strconv.Itoa(number))
	}
	return r.lockers[number], nil
}

// checkOut must be called with r.mu held.
func (r *Registry) checkOut(l *Locker) (CheckOutResult, error) {
	result, err := l.CheckOut(r.clock.Now())
	if err != nil {
		return CheckOutResult{}, err
	}
	if result.Ticket != nil {
		delete(r.tickets, *result.Ticket)
	}
	return result, nil
}

// totalWeight must be called with r.mu held.
func (r *Registry) totalWeight() kernel.Weight {
	total := kernel.ZeroWeight()
	for _, l := range r.lockers {
		if !l.IsAvailable() {
			total = total.Add(l.Weight())
		}
	}
	return total
}
