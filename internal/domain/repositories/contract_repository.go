package repositories

import (
	"context"

	"github.com/google/uuid"
	"saas-admin.backend/internal/domain/entities"
)

// ContractRepository stores deployed contracts and the diamond records around them
type ContractRepository interface {
	UpsertSmartContract(ctx context.Context, contract *entities.SmartContract) (*entities.SmartContract, error)
	// UpsertDiamondFactory leaves stored symbols untouched when factory.Symbols is nil
	UpsertDiamondFactory(ctx context.Context, factory *entities.DiamondFactory) (*entities.DiamondFactory, error)
	UpsertDiamond(ctx context.Context, diamond *entities.Diamond) (*entities.Diamond, error)
	UpsertDiamondFacet(ctx context.Context, facet *entities.DiamondFacet) (*entities.DiamondFacet, error)
	ListDiamonds(ctx context.Context, factoryID uuid.UUID) ([]*entities.Diamond, error)
}
