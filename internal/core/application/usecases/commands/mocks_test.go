package commands_test

import (
	"context"
	"testing"
	"time"

	"lockerroom/internal/core/application/usecases/commands"
	"lockerroom/internal/core/domain/model/activity"
	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/core/domain/model/locker"
	"lockerroom/internal/core/ports"

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

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ActivityRepository() ports.ActivityRepository {
	args := m.Called()
	return args.Get(0).(ports.ActivityRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// entryOf matches a journal entry of the given kind for the given locker.
func entryOf(kind activity.Kind, lockerNumber int) any {
	return mock.MatchedBy(func(a *activity.Activity) bool {
		return a.Kind() == kind && a.LockerNumber() == lockerNumber
	})
}

// expectJournal sets up one successful journal transaction with the given entries.
func expectJournal(ctx context.Context, entries ...any) (*MockUoWFactory, *MockUoW, *MockActivityRepository) {
	repo := new(MockActivityRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	calls := []*mock.Call{
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ActivityRepository").Return(repo).Once(),
	}
	for _, e := range entries {
		calls = append(calls, repo.On("Add", ctx, e).Return(nil).Once())
	}
	calls = append(calls,
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	mock.InOrder(calls...)

	return factory, uow, repo
}

func newRegistry(t *testing.T, sizes ...int) *locker.Registry {
	t.Helper()
	registry, err := locker.NewRegistry(sizes, kernel.ClockFunc(func() time.Time { return now }))
	require.NoError(t, err)
	return registry
}
