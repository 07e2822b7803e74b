package repositories

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"saas-admin.backend/internal/domain/entities"
	domainerrors "saas-admin.backend/internal/domain/errors"
	"saas-admin.backend/internal/domain/repositories"
	"saas-admin.backend/internal/infrastructure/models"
)

// blockchainRepo implements repositories.BlockchainRepository
type blockchainRepo struct {
	db *gorm.DB
}

// NewBlockchainRepository creates a new blockchain repository
func NewBlockchainRepository(db *gorm.DB) repositories.BlockchainRepository {
	return &blockchainRepo{db: db}
}

// GetByNetworkID gets a blockchain by its EVM chain id
func (r *blockchainRepo) GetByNetworkID(ctx context.Context, networkID int64) (*entities.Blockchain, error) {
	var m models.Blockchain
	if err := r.db.WithContext(ctx).Where("network_id = ?", networkID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Upsert creates or updates the blockchain keyed by network id
func (r *blockchainRepo) Upsert(ctx context.Context, chain *entities.Blockchain) (*entities.Blockchain, error) {
	m, err := upsert(ctx, r.db, Key("network_id", chain.NetworkID), &models.Blockchain{
		NetworkID:   chain.NetworkID,
		Name:        chain.Name,
		RPCURL:      chain.RPCURL,
		ExplorerURL: chain.ExplorerURL.String,
		IsActive:    chain.IsActive,
	})
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *blockchainRepo) toEntity(m *models.Blockchain) *entities.Blockchain {
	return &entities.Blockchain{
		ID:          m.ID,
		NetworkID:   m.NetworkID,
		Name:        m.Name,
		RPCURL:      m.RPCURL,
		ExplorerURL: null.NewString(m.ExplorerURL, m.ExplorerURL != ""),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
