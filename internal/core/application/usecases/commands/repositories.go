// Package commands contains the operations that change locker state.
// Every command follows the same pattern: constructor validation, the registry
// mutation, then a journal entry written through a unit of work.
package commands

import (
	"context"

	"lockerroom/internal/core/ports"
)

// Unit of Work interfaces used by the command handlers to journal their effects.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ActivityRepoFactory provides the journal repository within a transaction.
	ActivityRepoFactory interface {
		ActivityRepository() ports.ActivityRepository
	}

	// UoW manages one journal transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.ActivityRepository().Add(ctx, entry)
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ActivityRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
