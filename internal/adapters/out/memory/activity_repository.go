package memory

import (
	"context"
	"sort"

	"lockerroom/internal/core/domain/model/activity"
	"lockerroom/internal/pkg/errs"
)

// ActivityRepository implements ports.ActivityRepository over a Journal.
type ActivityRepository struct {
	uow *UnitOfWork
}

// NewActivityRepository reads and writes journal directly, without a transaction.
func NewActivityRepository(journal *Journal) *ActivityRepository {
	return &ActivityRepository{uow: &UnitOfWork{journal: journal}}
}

func (r *ActivityRepository) Add(ctx context.Context, entry *activity.Activity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	if r.uow.active {
		r.uow.pending = append(r.uow.pending, entry)
		return nil
	}
	return r.uow.journal.append(entry)
}

// ListByLocker sees committed entries only. Entries with equal timestamps keep the
// reverse of their insertion order.
func (r *ActivityRepository) ListByLocker(ctx context.Context, lockerNumber int, limit int) ([]*activity.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.uow.journal.listByLocker(lockerNumber, limit), nil
}

func (j *Journal) append(entries ...*activity.Activity) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		id := e.ID().String()
		_, stored := j.ids[id]
		_, batched := seen[id]
		if stored || batched {
			return errs.NewValueIsInvalidError("activity " + id + " already exists")
		}
		seen[id] = struct{}{}
	}

	for _, e := range entries {
		j.ids[e.ID().String()] = struct{}{}
		j.entries = append(j.entries, e)
	}
	return nil
}

func (j *Journal) listByLocker(lockerNumber int, limit int) []*activity.Activity {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]*activity.Activity, 0)
	for i := len(j.entries) - 1; i >= 0; i-- {
		if j.entries[i].LockerNumber() == lockerNumber {
			out = append(out, j.entries[i])
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].OccurredAt().After(out[b].OccurredAt())
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
