package queries_test

import (
	"context"
	"testing"
	"time"

	"lockerroom/internal/core/domain/model/activity"
	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/core/domain/model/locker"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)

type MockActivityRepository struct{ mock.Mock }

func (m *MockActivityRepository) Add(ctx context.Context, entry *activity.Activity) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) ListByLocker(ctx context.Context, lockerNumber int, limit int) ([]*activity.Activity, error) {
	args := m.Called(ctx, lockerNumber, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*activity.Activity), args.Error(1)
}

type testClock struct{ at time.Time }

func (c *testClock) Now() time.Time { return c.at }

func newRegistry(t *testing.T, clock kernel.Clock, sizes ...int) *locker.Registry {
	t.Helper()
	if clock == nil {
		clock = &testClock{at: now}
	}
	registry, err := locker.NewRegistry(sizes, clock)
	require.NoError(t, err)
	return registry
}
