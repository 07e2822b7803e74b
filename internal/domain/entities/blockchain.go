package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Blockchain is a network that artifacts were imported from, keyed by its chain ID
type Blockchain struct {
	ID          uuid.UUID   `json:"id"`
	NetworkID   int64       `json:"networkId"`
	Name        string      `json:"name"`
	RPCURL      string      `json:"rpcUrl"`
	ExplorerURL null.String `json:"explorerUrl,omitempty"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
