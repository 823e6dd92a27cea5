// Package memory keeps the activity journal in process memory. It backs the service
// when no database is configured; entries are lost on restart.
package memory

import (
	"context"
	"errors"
	"sync"

	"lockerroom/internal/core/domain/model/activity"
	"lockerroom/internal/core/ports"
)

// ErrNoActiveTransaction mirrors gorm.ErrInvalidTransaction for the in-memory journal.
var ErrNoActiveTransaction = errors.New("no active transaction")

// Journal is the shared entry store behind every unit of work created by one factory.
type Journal struct {
	mu      sync.RWMutex
	entries []*activity.Activity
	ids     map[string]struct{}
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{ids: make(map[string]struct{})}
}

// UnitOfWorkFactory hands out units of work writing to one Journal.
type UnitOfWorkFactory struct {
	journal *Journal
}

// NewUnitOfWorkFactory creates a factory over journal.
func NewUnitOfWorkFactory(journal *Journal) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{journal: journal}
}

// Create produces a unit of work with no open transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{journal: f.journal}
}

// UnitOfWork buffers Add calls and publishes them to the journal on Commit.
// Outside a transaction Add writes straight through.
type UnitOfWork struct {
	journal *Journal
	pending []*activity.Activity
	active  bool
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	err := uow.journal.append(uow.pending...)
	uow.pending = nil
	uow.active = false
	return err
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.pending = nil
	uow.active = false
	return nil
}

// ActivityRepository returns a repository bound to this unit of work.
func (uow *UnitOfWork) ActivityRepository() ports.ActivityRepository {
	return &ActivityRepository{uow: uow}
}
