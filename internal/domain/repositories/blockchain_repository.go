package repositories

import (
	"context"

	"saas-admin.backend/internal/domain/entities"
)

// BlockchainRepository defines blockchain data operations
type BlockchainRepository interface {
	GetByNetworkID(ctx context.Context, networkID int64) (*entities.Blockchain, error)
	Upsert(ctx context.Context, chain *entities.Blockchain) (*entities.Blockchain, error)
}
