// Package activityrepo persists the locker activity journal with GORM.
// Entries are append-only; operation details are kept as a JSON document so new
// detail fields never need a schema change.
package activityrepo

import (
	"errors"
	"time"

	"lockerroom/internal/core/domain/model/activity"
	"lockerroom/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// ErrDetailsAreNotValidJSON is returned when a stored details document cannot be decoded.
var ErrDetailsAreNotValidJSON = errors.New("activity details are not valid JSON")

// ActivityDTO is one row of the locker_activities table.
type ActivityDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	LockerNumber int       `gorm:"index:idx_locker_activities_locker_time,priority:1;not null"`
	Kind         string    `gorm:"type:varchar(32);not null"`
	OccurredAt   time.Time `gorm:"index:idx_locker_activities_locker_time,priority:2;not null"`
	Details      string    `gorm:"type:jsonb;not null;default:'{}'"`
}

// TableName overrides GORM's pluralized default.
func (ActivityDTO) TableName() string {
	return "locker_activities"
}

// detailsJSON round-trips floats exactly; the faster configs round them to 6 decimals.
var detailsJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// detailsDTO is the JSON shape of the details column.
type detailsDTO struct {
	CustomerName  *string    `json:"customerName,omitempty"`
	Weight        *float64   `json:"weight,omitempty"`
	DurationHours *int       `json:"durationHours,omitempty"`
	CheckInTime   *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime  *time.Time `json:"checkOutTime,omitempty"`
	Ticket        *string    `json:"ticket,omitempty"`
}

func fromDomain(entry *activity.Activity) (ActivityDTO, error) {
	d := entry.Details()
	payload, err := detailsJSON.Marshal(detailsDTO{
		CustomerName:  d.CustomerName,
		Weight:        d.Weight,
		DurationHours: d.DurationHours,
		CheckInTime:   d.CheckInTime,
		CheckOutTime:  d.CheckOutTime,
		Ticket:        d.Ticket,
	})
	if err != nil {
		return ActivityDTO{}, err
	}

	return ActivityDTO{
		ID:           entry.ID().Bytes(),
		LockerNumber: entry.LockerNumber(),
		Kind:         entry.Kind().String(),
		OccurredAt:   entry.OccurredAt(),
		Details:      string(payload),
	}, nil
}

func toDomain(dto ActivityDTO) (*activity.Activity, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := activity.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	raw := []byte(dto.Details)
	if !detailsJSON.Valid(raw) {
		return nil, ErrDetailsAreNotValidJSON
	}
	var d detailsDTO
	if err = detailsJSON.Unmarshal(raw, &d); err != nil {
		return nil, err
	}

	return activity.NewActivity(id, dto.LockerNumber, kind, dto.OccurredAt, activity.Details{
		CustomerName:  d.CustomerName,
		Weight:        d.Weight,
		DurationHours: d.DurationHours,
		CheckInTime:   d.CheckInTime,
		CheckOutTime:  d.CheckOutTime,
		Ticket:        d.Ticket,
	})
}
