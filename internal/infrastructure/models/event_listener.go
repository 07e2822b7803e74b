package models

import "github.com/google/uuid"

type EventListener struct {
	Base
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_event_listeners_key"`
	NetworkID    int64     `gorm:"not null;uniqueIndex:idx_event_listeners_key"`
	ProjectID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_listeners_key"`
	DefinitionID uuid.UUID `gorm:"type:uuid;not null"`
	Address      string    `gorm:"type:varchar(66);not null"`
	Collection   string    `gorm:"type:varchar(255);not null"`
	Enabled      bool      `gorm:"not null"`
}

func (EventListener) TableName() string {
	return "event_listeners"
}

// EventLog is the row shape of every <listener>__e collection.
// It declares no indexes because one model backs many tables.
type EventLog struct {
	Base
	ListenerID      uuid.UUID `gorm:"type:uuid;not null"`
	BlockNumber     int64     `gorm:"not null"`
	BlockHash       string    `gorm:"type:varchar(66)"`
	TransactionHash string    `gorm:"type:varchar(66);not null"`
	LogIndex        uint
	Address         string `gorm:"type:varchar(66);not null"`
	Topics          string `gorm:"type:jsonb"`
	Data            string `gorm:"type:jsonb"` // decoded event arguments
	Removed         bool
}
