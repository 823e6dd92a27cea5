package queries_test

import (
	"testing"
	"time"

	"lockerroom/internal/core/application/usecases/queries"
	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/core/domain/model/locker"
	"lockerroom/internal/core/domain/services"
	"lockerroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	testCases := []struct {
		name     string
		validate func() error
		expected error
	}{
		{"GetLockersQuery", queries.GetLockersQuery{}.Validate, queries.ErrGetLockersQueryIsNotConstructed},
		{"GetLockerQuery", queries.GetLockerQuery{}.Validate, queries.ErrGetLockerQueryIsNotConstructed},
		{"GetAvailableLockersQuery", queries.GetAvailableLockersQuery{}.Validate, queries.ErrGetAvailableLockersQueryIsNotConstructed},
		{"GetOccupancyStatsQuery", queries.GetOccupancyStatsQuery{}.Validate, queries.ErrGetOccupancyStatsQueryIsNotConstructed},
		{"CalculatePriceQuery", queries.CalculatePriceQuery{}.Validate, queries.ErrCalculatePriceQueryIsNotConstructed},
		{"GetOverdueLockersQuery", queries.GetOverdueLockersQuery{}.Validate, queries.ErrGetOverdueLockersQueryIsNotConstructed},
		{"GetLockerHistoryQuery", queries.GetLockerHistoryQuery{}.Validate, queries.ErrGetLockerHistoryQueryIsNotConstructed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.validate(), tc.expected)
		})
	}
}

func TestGetLockersQueryHandler_Handle(t *testing.T) {
	// Arrange
	registry := newRegistry(t, nil, 3, 1, 2)
	require.NoError(t, registry.Reserve(1, "Ada"))
	handler := queries.NewGetLockersQueryHandler(registry)

	// Act
	lockers, err := handler.Handle(t.Context(), queries.NewGetLockersQuery())

	// Assert
	require.NoError(t, err)
	require.Len(t, lockers, 3)
	for i, l := range lockers {
		assert.Equal(t, i, l.Number)
	}
	assert.Equal(t, 3, lockers[0].Size)
	assert.Equal(t, locker.Free, lockers[0].Status)
	assert.Equal(t, locker.ReservedUnoccupied, lockers[1].Status)
}

func TestGetLockerQueryHandler_Handle(t *testing.T) {
	handler := queries.NewGetLockerQueryHandler(newRegistry(t, nil, 1, 2))

	t.Run("known locker", func(t *testing.T) {
		query, err := queries.NewGetLockerQuery(1)
		require.NoError(t, err)

		snapshot, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, 1, snapshot.Number)
		assert.Equal(t, 2, snapshot.Size)
	})

	t.Run("unknown locker", func(t *testing.T) {
		query, err := queries.NewGetLockerQuery(2)
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("negative number", func(t *testing.T) {
		_, err := queries.NewGetLockerQuery(-1)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGetAvailableLockersQueryHandler_Handle(t *testing.T) {
	// Arrange
	registry := newRegistry(t, nil, 1, 2, 3, 4)
	require.NoError(t, registry.Reserve(2, "Ada"))
	_, err := registry.CheckIn(3, kernel.MustNewWeight(1), now.Add(time.Hour), 1)
	require.NoError(t, err)
	handler := queries.NewGetAvailableLockersQueryHandler(registry)

	testCases := []struct {
		minSize  int
		expected []int
	}{
		{minSize: 0, expected: []int{0, 1}},
		{minSize: 2, expected: []int{1}},
		{minSize: 3, expected: []int{}},
	}

	for _, tc := range testCases {
		query, err := queries.NewGetAvailableLockersQuery(tc.minSize)
		require.NoError(t, err)

		numbers, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, tc.expected, numbers, "minSize %d", tc.minSize)
	}
}

func TestNewGetAvailableLockersQuery_NegativeMinSize(t *testing.T) {
	_, err := queries.NewGetAvailableLockersQuery(-1)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetOccupancyStatsQueryHandler_Handle(t *testing.T) {
	// Arrange
	registry := newRegistry(t, nil, 1, 2, 3, 4)
	require.NoError(t, registry.Reserve(0, "Ada"))
	_, err := registry.CheckIn(1, kernel.MustNewWeight(2.5), now.Add(time.Hour), 1)
	require.NoError(t, err)
	_, err = registry.CheckIn(2, kernel.MustNewWeight(4), now.Add(time.Hour), 1)
	require.NoError(t, err)

	calculator, err := services.NewPriceCalculator(services.DefaultUnitRate)
	require.NoError(t, err)
	handler := queries.NewGetOccupancyStatsQueryHandler(registry, calculator)

	// Act
	stats, err := handler.Handle(t.Context(), queries.NewGetOccupancyStatsQuery())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalLockers)
	assert.Equal(t, 2, stats.SpaceAvailable)
	assert.Equal(t, 2, stats.Occupied)
	assert.Equal(t, 1, stats.ReservedUnoccupied)
	assert.InDelta(t, 6.5, stats.TotalWeightStored.Units(), 1e-9)
	assert.InDelta(t, 13.0, stats.StoredValue, 1e-9)
}

func TestGetOverdueLockersQueryHandler_Handle(t *testing.T) {
	// Arrange
	clock := &testClock{at: now}
	registry := newRegistry(t, clock, 1, 1, 1)
	_, err := registry.CheckIn(0, kernel.MustNewWeight(1), now.Add(time.Hour), 1)
	require.NoError(t, err)
	_, err = registry.CheckIn(2, kernel.MustNewWeight(1), now.Add(time.Hour), 5)
	require.NoError(t, err)
	handler := queries.NewGetOverdueLockersQueryHandler(registry)

	// Act
	before, err := handler.Handle(t.Context(), queries.NewGetOverdueLockersQuery())
	require.NoError(t, err)
	clock.at = now.Add(3 * time.Hour)
	after, err := handler.Handle(t.Context(), queries.NewGetOverdueLockersQuery())
	require.NoError(t, err)

	// Assert
	assert.Empty(t, before)
	require.Len(t, after, 1)
	assert.Equal(t, 0, after[0].Number)
}
