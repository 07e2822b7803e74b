package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"saas-admin.backend/pkg/utils"
)

// Base carries the primary key and timestamps shared by every record
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns a time-ordered id when the caller did not set one
func (b *Base) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = utils.GenerateUUIDv7()
	}
	return nil
}

// Identity exposes the embedded base so generic helpers can carry ids across rows
func (b *Base) Identity() *Base {
	return b
}
