package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the soft lifecycle flag carried by every entity.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Entity holds the columns shared by every table. Timestamps are written
// by the store from its clock on each persist, so gorm's own tracking is off.
type Entity struct {
	ID        string    `gorm:"primaryKey;size:36"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;index;autoUpdateTime:false"`
	Status    Status    `gorm:"size:32;not null;default:ACTIVE;index"`
}

// Touch stamps a write at now. CreatedAt is only set the first time.
func (e *Entity) Touch(now time.Time) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if now.Before(e.CreatedAt) {
		now = e.CreatedAt
	}
	e.UpdatedAt = now
}

func (e *Entity) IsActive() bool {
	return e.Status == StatusActive
}

func (e *Entity) BeforeCreate(_ *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = StatusActive
	}
	if e.CreatedAt.IsZero() {
		e.Touch(time.Now())
	}
	return nil
}
