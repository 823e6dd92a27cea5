package locker_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/core/domain/model/locker"
	"lockerroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a settable kernel.Clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestRegistry(t *testing.T, sizes ...int) (*locker.Registry, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: baseTime}
	r, err := locker.NewRegistry(sizes, clock)
	require.NoError(t, err)
	return r, clock
}

func TestNewRegistry(t *testing.T) {
	t.Run("every locker starts free and empty", func(t *testing.T) {
		r, _ := newTestRegistry(t, 1, 2, 3)

		require.NoError(t, r.Validate())
		assert.Equal(t, 3, r.Len())
		for i, snap := range r.Lockers() {
			assert.Equal(t, i, snap.Number)
			assert.Equal(t, i+1, snap.Size)
			assert.True(t, snap.Available)
			assert.False(t, snap.Reserved)
			assert.True(t, snap.Weight.IsZero())
		}
	})

	t.Run("empty layout is rejected", func(t *testing.T) {
		r, err := locker.NewRegistry(nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, r)
	})

	t.Run("all invalid sizes are reported", func(t *testing.T) {
		_, err := locker.NewRegistry([]int{1, 0, 3, -2}, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "locker 1")
		assert.Contains(t, err.Error(), "locker 3")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var r *locker.Registry

		require.ErrorIs(t, r.Validate(), locker.ErrRegistryIsNotConstructed)
	})
}

func TestRegistry_UnknownLockerNumber(t *testing.T) {
	r, _ := newTestRegistry(t, 1, 2, 3)

	for _, number := range []int{-1, 3, 100} {
		require.ErrorIs(t, r.Reserve(number, "Ada"), errs.ErrObjectNotFound)

		_, err := r.CheckIn(number, kernel.MustNewWeight(1), baseTime.Add(time.Hour), 1)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = r.ConfirmExtension(number, true)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = r.CheckOut(number)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = r.Locker(number)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	}

	_, err := r.CheckOut(7)
	assert.Equal(t, "object not found: 7", err.Error())
}

func TestRegistry_ListAvailable(t *testing.T) {
	r, _ := newTestRegistry(t, 1, 2, 3, 4)
	require.NoError(t, r.Reserve(1, "Ada"))
	_, err := r.CheckIn(2, kernel.MustNewWeight(3), baseTime.Add(time.Hour), 1)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 3}, r.ListAvailable())
	assert.Equal(t, []int{3}, r.ListAvailableBySize(2))
	assert.Empty(t, r.ListAvailableBySize(5))
}

func TestRegistry_Reserve(t *testing.T) {
	r, _ := newTestRegistry(t, 1, 2)

	require.NoError(t, r.Reserve(0, "Ada"))
	require.ErrorIs(t, r.Reserve(0, "Grace"), locker.ErrAlreadyReserved)

	snap, err := r.Locker(0)
	require.NoError(t, err)
	assert.Equal(t, locker.ReservedUnoccupied, snap.Status)
}

func TestRegistry_Scenario(t *testing.T) {
	r, clock := newTestRegistry(t, 1, 2, 3)
	now := clock.Now()

	res, err := r.CheckIn(0, kernel.MustNewWeight(5), now.Add(time.Hour), 2)
	require.NoError(t, err)
	assert.Equal(t, locker.PreBooked, res.Outcome)
	assert.Equal(t, now.Add(3*time.Hour), *res.CheckOutTime)

	snap, err := r.Locker(0)
	require.NoError(t, err)
	assert.Equal(t, locker.Occupied, snap.Status)
	assert.Equal(t, 2, r.SpaceAvailable())

	_, err = r.CheckOut(0)
	require.NoError(t, err)

	snap, err = r.Locker(0)
	require.NoError(t, err)
	assert.True(t, snap.Available)
	assert.True(t, snap.Weight.IsZero())
	assert.Equal(t, 3, r.SpaceAvailable())
}

func TestRegistry_CheckOutTwiceFails(t *testing.T) {
	r, _ := newTestRegistry(t, 1)
	_, err := r.CheckIn(0, kernel.MustNewWeight(5), baseTime.Add(time.Hour), 2)
	require.NoError(t, err)
	_, err = r.CheckOut(0)
	require.NoError(t, err)

	_, err = r.CheckOut(0)

	require.ErrorIs(t, err, locker.ErrAlreadyAvailable)
}

func TestRegistry_CheckedOutLockerCanBeReservedAgain(t *testing.T) {
	r, _ := newTestRegistry(t, 1)
	_, err := r.CheckIn(0, kernel.MustNewWeight(5), baseTime.Add(time.Hour), 2)
	require.NoError(t, err)
	_, err = r.CheckOut(0)
	require.NoError(t, err)

	require.NoError(t, r.Reserve(0, "Grace"))
	assert.True(t, r.TotalWeightStored().IsZero())
}

func TestRegistry_ExtendedReservationStoresNoWeight(t *testing.T) {
	r, _ := newTestRegistry(t, 1)
	require.NoError(t, r.Reserve(0, "Ada"))
	_, err := r.CheckIn(0, kernel.MustNewWeight(5), baseTime.Add(time.Hour), 2)
	require.NoError(t, err)
	_, err = r.ConfirmExtension(0, true)
	require.NoError(t, err)

	snap, err := r.Locker(0)
	require.NoError(t, err)
	assert.Equal(t, locker.ReservedUnoccupied, snap.Status)
	assert.True(t, r.TotalWeightStored().IsZero())
}

func TestRegistry_Tickets(t *testing.T) {
	r, _ := newTestRegistry(t, 1, 2)
	res, err := r.CheckIn(1, kernel.MustNewWeight(5), baseTime.Add(time.Hour), 2)
	require.NoError(t, err)

	number, err := r.ResolveTicket(*res.Ticket)
	require.NoError(t, err)
	assert.Equal(t, 1, number)

	out, err := r.CheckOutByTicket(*res.Ticket)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Number)

	_, err = r.CheckOutByTicket(*res.Ticket)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	_, err = r.ResolveTicket(*res.Ticket)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = r.CheckOutByTicket(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestRegistry_TotalWeightStored(t *testing.T) {
	r, _ := newTestRegistry(t, 1, 2, 3)
	assert.True(t, r.TotalWeightStored().IsZero())

	_, err := r.CheckIn(0, kernel.MustNewWeight(5), baseTime.Add(time.Hour), 2)
	require.NoError(t, err)
	_, err = r.CheckIn(2, kernel.MustNewWeight(2.5), baseTime.Add(time.Hour), 1)
	require.NoError(t, err)
	require.NoError(t, r.Reserve(1, "Ada"))

	assert.InDelta(t, 7.5, r.TotalWeightStored().Units(), 1e-9)

	_, err = r.CheckOut(0)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, r.TotalWeightStored().Units(), 1e-9)
}

func TestRegistry_CheckInRejectsUnconstructedWeight(t *testing.T) {
	r, _ := newTestRegistry(t, 1)

	_, err := r.CheckIn(0, kernel.Weight{}, baseTime.Add(time.Hour), 1)

	require.ErrorIs(t, err, kernel.ErrWeightIsNotConstructed)
}

func TestRegistry_CheckInRejectsOverlongDuration(t *testing.T) {
	r, _ := newTestRegistry(t, 1)

	_, err := r.CheckIn(0, kernel.MustNewWeight(5), baseTime.Add(time.Hour), 3_000_000)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Equal(t, []int{0}, r.ListAvailable())
	assert.Empty(t, r.Overdue())
}

func TestRegistry_Stats(t *testing.T) {
	r, _ := newTestRegistry(t, 1, 2, 3, 4)
	require.NoError(t, r.Reserve(0, "Ada"))
	_, err := r.CheckIn(1, kernel.MustNewWeight(4), baseTime.Add(time.Hour), 1)
	require.NoError(t, err)

	stats := r.Stats()

	assert.Equal(t, 4, stats.TotalLockers)
	assert.Equal(t, 3, stats.SpaceAvailable)
	assert.Equal(t, 1, stats.Occupied)
	assert.Equal(t, 1, stats.ReservedUnoccupied)
	assert.InDelta(t, 4, stats.TotalWeightStored.Units(), 0)
	assert.Equal(t, r.SpaceAvailable(), stats.SpaceAvailable)
}

func TestRegistry_Overdue(t *testing.T) {
	r, clock := newTestRegistry(t, 1, 2)
	_, err := r.CheckIn(0, kernel.MustNewWeight(1), baseTime.Add(time.Hour), 1)
	require.NoError(t, err)
	_, err = r.CheckIn(1, kernel.MustNewWeight(1), baseTime.Add(time.Hour), 5)
	require.NoError(t, err)

	assert.Empty(t, r.Overdue())

	clock.Advance(3 * time.Hour)
	overdue := r.Overdue()

	require.Len(t, overdue, 1)
	assert.Equal(t, 0, overdue[0].Number)
}

func TestRegistry_ExpirePendingExtensions(t *testing.T) {
	r, clock := newTestRegistry(t, 1, 2)
	require.NoError(t, r.Reserve(1, "Ada"))
	_, err := r.CheckIn(1, kernel.MustNewWeight(0), baseTime.Add(time.Hour), 1)
	require.NoError(t, err)

	assert.Empty(t, r.ExpirePendingExtensions(time.Minute))

	clock.Advance(2 * time.Minute)
	assert.Equal(t, []int{1}, r.ExpirePendingExtensions(time.Minute))

	_, err = r.ConfirmExtension(1, true)
	require.ErrorIs(t, err, locker.ErrNoPendingExtension)
}

func TestRegistry_SnapshotsDoNotAlias(t *testing.T) {
	r, _ := newTestRegistry(t, 1)
	require.NoError(t, r.Reserve(0, "Ada"))

	snap, err := r.Locker(0)
	require.NoError(t, err)
	*snap.CustomerName = "Mallory"

	again, err := r.Locker(0)
	require.NoError(t, err)
	assert.Equal(t, "Ada", *again.CustomerName)
}

func TestRegistry_ConcurrentReservationsHaveOneWinner(t *testing.T) {
	r, _ := newTestRegistry(t, 1, 2, 3)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.Reserve(1, "customer") == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestRegistry_ConcurrentCheckInsHaveOneWinner(t *testing.T) {
	r, _ := newTestRegistry(t, 1)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.CheckIn(0, kernel.MustNewWeight(1), baseTime.Add(time.Hour), 1); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.InDelta(t, 1, r.TotalWeightStored().Units(), 0)
}
