// Package ports defines the contracts between the locker room core and its adapters.
package ports

import (
	"context"

	"lockerroom/internal/core/domain/model/activity"
)

// ActivityRepository persists journal entries.
type ActivityRepository interface {
	// Add appends one entry. Entries are never updated.
	Add(ctx context.Context, entry *activity.Activity) error

	// ListByLocker returns up to limit entries of one locker, newest first.
	// A limit <= 0 returns every entry.
	ListByLocker(ctx context.Context, lockerNumber int, limit int) ([]*activity.Activity, error)
}
