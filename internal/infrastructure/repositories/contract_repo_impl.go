package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"saas-admin.backend/internal/domain/entities"
	"saas-admin.backend/internal/domain/repositories"
	"saas-admin.backend/internal/infrastructure/models"
)

// contractRepo implements repositories.ContractRepository
type contractRepo struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *gorm.DB) repositories.ContractRepository {
	return &contractRepo{db: db}
}

// UpsertSmartContract stores a deployed contract keyed by address and blockchain
func (r *contractRepo) UpsertSmartContract(ctx context.Context, c *entities.SmartContract) (*entities.SmartContract, error) {
	m, err := upsert(ctx, r.db,
		Key("address", c.Address, "blockchain_id", c.BlockchainID),
		&models.SmartContract{
			Name:                  c.Name,
			Code:                  c.Code,
			Address:               c.Address,
			BlockchainID:          c.BlockchainID,
			AbiID:                 c.AbiID,
			DeploymentArtifactID:  c.DeploymentArtifactID,
			DeploymentTransaction: c.DeploymentTransaction.Ptr(),
		},
	)
	if err != nil {
		return nil, err
	}
	return &entities.SmartContract{
		ID:                    m.ID,
		Name:                  m.Name,
		Code:                  m.Code,
		Address:               m.Address,
		BlockchainID:          m.BlockchainID,
		AbiID:                 m.AbiID,
		DeploymentArtifactID:  m.DeploymentArtifactID,
		DeploymentTransaction: null.StringFromPtr(m.DeploymentTransaction),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}, nil
}

// UpsertDiamondFactory stores a factory keyed by address and blockchain.
// Nil Symbols keeps the symbols already stored for the factory.
func (r *contractRepo) UpsertDiamondFactory(ctx context.Context, f *entities.DiamondFactory) (*entities.DiamondFactory, error) {
	key := Key("address", f.Address, "blockchain_id", f.BlockchainID)
	symbols := pq.StringArray(f.Symbols)
	if f.Symbols == nil {
		existing, err := findByKey[models.DiamondFactory](ctx, r.db, key)
		switch {
		case err == nil:
			symbols = existing.Symbols
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	m, err := upsert(ctx, r.db, key,
		&models.DiamondFactory{
			Address:         f.Address,
			BlockchainID:    f.BlockchainID,
			NetworkID:       f.NetworkID,
			AbiID:           f.AbiID,
			SmartContractID: f.SmartContractID,
			DeploymentID:    f.DeploymentID,
			Symbols:         symbols,
		},
	)
	if err != nil {
		return nil, err
	}
	return &entities.DiamondFactory{
		ID:              m.ID,
		Address:         m.Address,
		BlockchainID:    m.BlockchainID,
		NetworkID:       m.NetworkID,
		AbiID:           m.AbiID,
		SmartContractID: m.SmartContractID,
		DeploymentID:    m.DeploymentID,
		Symbols:         []string(m.Symbols),
	}, nil
}

// UpsertDiamond stores a discovered diamond keyed by address and blockchain
func (r *contractRepo) UpsertDiamond(ctx context.Context, d *entities.Diamond) (*entities.Diamond, error) {
	m, err := upsert(ctx, r.db,
		Key("address", d.Address, "blockchain_id", d.BlockchainID),
		&models.Diamond{
			Address:          d.Address,
			BlockchainID:     d.BlockchainID,
			Symbol:           d.Symbol,
			DiamondFactoryID: d.DiamondFactoryID,
		},
	)
	if err != nil {
		return nil, err
	}
	return toDiamondEntity(m), nil
}

// UpsertDiamondFacet stores a facet keyed by address and blockchain
func (r *contractRepo) UpsertDiamondFacet(ctx context.Context, f *entities.DiamondFacet) (*entities.DiamondFacet, error) {
	m, err := upsert(ctx, r.db,
		Key("address", f.Address, "blockchain_id", f.BlockchainID),
		&models.DiamondFacet{
			Address:         f.Address,
			BlockchainID:    f.BlockchainID,
			AbiID:           f.AbiID,
			SmartContractID: f.SmartContractID,
			Name:            f.Name,
			Code:            f.Code,
		},
	)
	if err != nil {
		return nil, err
	}
	return &entities.DiamondFacet{
		ID:              m.ID,
		Address:         m.Address,
		BlockchainID:    m.BlockchainID,
		AbiID:           m.AbiID,
		SmartContractID: m.SmartContractID,
		Name:            m.Name,
		Code:            m.Code,
	}, nil
}

// ListDiamonds lists the diamonds discovered through one factory ordered by symbol
func (r *contractRepo) ListDiamonds(ctx context.Context, factoryID uuid.UUID) ([]*entities.Diamond, error) {
	var ms []models.Diamond
	if err := r.db.WithContext(ctx).Where("diamond_factory_id = ?", factoryID).Order("symbol").Find(&ms).Error; err != nil {
		return nil, err
	}

	diamonds := make([]*entities.Diamond, 0, len(ms))
	for i := range ms {
		diamonds = append(diamonds, toDiamondEntity(&ms[i]))
	}
	return diamonds, nil
}

func toDiamondEntity(m *models.Diamond) *entities.Diamond {
	return &entities.Diamond{
		ID:               m.ID,
		Address:          m.Address,
		Symbol:           m.Symbol,
		BlockchainID:     m.BlockchainID,
		DiamondFactoryID: m.DiamondFactoryID,
	}
}
