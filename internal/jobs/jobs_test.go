package jobs

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"
	"time"

	"lockerroom/internal/adapters/out/memory"
	"lockerroom/internal/core/application/usecases/commands"
	"lockerroom/internal/core/application/usecases/queries"
	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/core/domain/model/locker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

type uowFactory struct{ f *memory.UnitOfWorkFactory }

func (u uowFactory) Create() commands.UoW { return u.f.Create() }

func newFixture(t *testing.T) (*locker.Registry, *fakeClock, *memory.Journal) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)}
	registry, err := locker.NewRegistry([]int{1, 2, 3}, clock)
	require.NoError(t, err)
	return registry, clock, memory.NewJournal()
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestOverdueLockerJob_ReportsLockersPastCheckout(t *testing.T) {
	registry, clock, _ := newFixture(t)
	_, err := registry.CheckIn(1, kernel.MustNewWeight(4), clock.Now().Add(time.Hour), 1)
	require.NoError(t, err)

	logger, buf := bufferLogger()
	job := NewOverdueLockerJob(queries.NewGetOverdueLockersQueryHandler(registry), "", logger)

	assert.Equal(t, 0, job.run(t.Context()))

	clock.Advance(3 * time.Hour)

	assert.Equal(t, 1, job.run(t.Context()))
	assert.Contains(t, buf.String(), "Locker is past its checkout time")
	assert.Contains(t, buf.String(), "number=1")
	assert.Contains(t, buf.String(), "component=overdue_locker_job")
}

func TestExtensionExpiryJob_DropsStaleRequestsAndJournalsThem(t *testing.T) {
	registry, clock, journal := newFixture(t)
	require.NoError(t, registry.Reserve(2, "Ada"))
	result, err := registry.CheckIn(2, kernel.MustNewWeight(1), clock.Now().Add(time.Hour), 2)
	require.NoError(t, err)
	require.Equal(t, locker.ExtensionRequired, result.Outcome)

	logger, _ := bufferLogger()
	handler := commands.NewExpireExtensionsCommandHandler(registry, uowFactory{f: memory.NewUnitOfWorkFactory(journal)}, logger)
	job := NewExtensionExpiryJob(handler, time.Minute, logger)

	assert.Empty(t, job.run(t.Context()))

	clock.Advance(2 * time.Minute)

	assert.Equal(t, []int{2}, job.run(t.Context()))

	_, err = registry.ConfirmExtension(2, true)
	require.ErrorIs(t, err, locker.ErrNoPendingExtension)

	history, err := memory.NewActivityRepository(journal).ListByLocker(t.Context(), 2, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "ExtensionExpired", history[0].Kind().String())
}

func TestNewExtensionExpiryJob_FallsBackToDefaultTTL(t *testing.T) {
	registry, _, journal := newFixture(t)
	logger, _ := bufferLogger()
	handler := commands.NewExpireExtensionsCommandHandler(registry, uowFactory{f: memory.NewUnitOfWorkFactory(journal)}, logger)

	job := NewExtensionExpiryJob(handler, 0, logger)

	assert.Equal(t, DefaultExtensionDecisionTTL, job.ttl)
}

func TestJobManager_StartAndStop(t *testing.T) {
	registry, _, journal := newFixture(t)
	logger, buf := bufferLogger()

	jm := NewJobManager(
		queries.NewGetOverdueLockersQueryHandler(registry),
		commands.NewExpireExtensionsCommandHandler(registry, uowFactory{f: memory.NewUnitOfWorkFactory(journal)}, logger),
		Settings{},
		logger,
	)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Contains(t, buf.String(), "Overdue locker job started")
	assert.Contains(t, buf.String(), "Extension expiry job stopped")
}

func TestJobManager_InvalidScheduleStopsStartedJobs(t *testing.T) {
	registry, _, journal := newFixture(t)
	logger, buf := bufferLogger()

	jm := NewJobManager(
		queries.NewGetOverdueLockersQueryHandler(registry),
		commands.NewExpireExtensionsCommandHandler(registry, uowFactory{f: memory.NewUnitOfWorkFactory(journal)}, logger),
		Settings{OverdueScanSchedule: "every now and then"},
		logger,
	)

	err := jm.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "overdue locker job")
	assert.Contains(t, buf.String(), "Extension expiry job stopped")
}
