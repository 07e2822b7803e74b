package entities

import (
	"time"

	"github.com/google/uuid"
)

// EventLogCollectionSuffix is appended to a listener name to form its event log collection
const EventLogCollectionSuffix = "__e"

// EventListener watches one event on one deployed contract
type EventListener struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	NetworkID    int64     `json:"networkId"`
	ProjectID    uuid.UUID `json:"projectId"`
	DefinitionID uuid.UUID `json:"definitionId"`
	Address      string    `json:"address"`
	Collection   string    `json:"collection"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// EventListenerFilter narrows listener listings
type EventListenerFilter struct {
	NetworkID *int64
	ProjectID *uuid.UUID
	Enabled   *bool
}
