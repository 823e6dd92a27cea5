package activityrepo

import (
	"context"

	"lockerroom/internal/core/domain/model/activity"

	"gorm.io/gorm"
)

// GormActivityRepository implements ports.ActivityRepository using GORM.
type GormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a repository on db, which may be a transaction.
func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

// Add inserts one journal entry.
func (r *GormActivityRepository) Add(ctx context.Context, entry *activity.Activity) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(entry)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByLocker returns the newest entries of one locker first.
func (r *GormActivityRepository) ListByLocker(ctx context.Context, lockerNumber int, limit int) ([]*activity.Activity, error) {
	var dtos []ActivityDTO

	q := r.db.WithContext(ctx).
		Where("locker_number = ?", lockerNumber).
		Order("occurred_at DESC").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*activity.Activity, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
