package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"saas-admin.backend/internal/domain/entities"
	"saas-admin.backend/internal/domain/repositories"
	"saas-admin.backend/internal/infrastructure/models"
)

// artifactRepo implements repositories.ArtifactRepository
type artifactRepo struct {
	db *gorm.DB
}

// NewArtifactRepository creates a new artifact repository
func NewArtifactRepository(db *gorm.DB) repositories.ArtifactRepository {
	return &artifactRepo{db: db}
}

// UpsertDeploymentArtifact stores an artifact keyed by address, transaction hash and blockchain
func (r *artifactRepo) UpsertDeploymentArtifact(ctx context.Context, a *entities.DeploymentArtifact) (*entities.DeploymentArtifact, error) {
	m, err := upsert(ctx, r.db,
		Key("address", a.Address, "transaction_hash", a.TransactionHash, "blockchain_id", a.BlockchainID),
		&models.DeploymentArtifact{
			Name:            a.Name,
			ContractName:    a.ContractName,
			Address:         a.Address,
			TransactionHash: a.TransactionHash,
			BlockchainID:    a.BlockchainID,
			DeploymentID:    a.DeploymentID,
			BlockNumber:     a.BlockNumber,
			GasUsed:         a.GasUsed,
			Deployer:        a.Deployer,
			SolcInputHash:   a.SolcInputHash,
			Args:            jsonText(a.Args),
			Data:            jsonText(a.Data),
		},
	)
	if err != nil {
		return nil, err
	}
	return &entities.DeploymentArtifact{
		ID:              m.ID,
		Name:            m.Name,
		ContractName:    m.ContractName,
		Address:         m.Address,
		TransactionHash: m.TransactionHash,
		BlockchainID:    m.BlockchainID,
		DeploymentID:    m.DeploymentID,
		BlockNumber:     m.BlockNumber,
		GasUsed:         m.GasUsed,
		Deployer:        m.Deployer,
		SolcInputHash:   m.SolcInputHash,
		Args:            rawJSON(m.Args),
		Data:            rawJSON(m.Data),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}

// UpsertAbi stores an ABI keyed by name and blockchain
func (r *artifactRepo) UpsertAbi(ctx context.Context, a *entities.Abi) (*entities.Abi, error) {
	m, err := upsert(ctx, r.db,
		Key("name", a.Name, "blockchain_id", a.BlockchainID),
		&models.Abi{
			Name:         a.Name,
			BlockchainID: a.BlockchainID,
			Data:         jsonText(a.Data),
		},
	)
	if err != nil {
		return nil, err
	}
	return &entities.Abi{
		ID:           m.ID,
		Name:         m.Name,
		BlockchainID: m.BlockchainID,
		Data:         rawJSON(m.Data),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

// UpsertMethod stores a method keyed by name and ABI
func (r *artifactRepo) UpsertMethod(ctx context.Context, method *entities.Method) (*entities.Method, error) {
	m, err := upsert(ctx, r.db,
		Key("name", method.Name, "abi_id", method.AbiID),
		&models.Method{
			Name:            method.Name,
			AbiID:           method.AbiID,
			Code:            method.Code,
			Inputs:          jsonText(method.Inputs),
			Outputs:         jsonText(method.Outputs),
			StateMutability: method.StateMutability,
			Data:            jsonText(method.Data),
		},
	)
	if err != nil {
		return nil, err
	}
	return &entities.Method{
		ID:              m.ID,
		AbiID:           m.AbiID,
		Name:            m.Name,
		Code:            m.Code,
		Inputs:          rawJSON(m.Inputs),
		Outputs:         rawJSON(m.Outputs),
		StateMutability: m.StateMutability,
		Data:            rawJSON(m.Data),
	}, nil
}

// UpsertEventDefinition stores an event definition keyed by name and ABI
func (r *artifactRepo) UpsertEventDefinition(ctx context.Context, event *entities.EventDefinition) (*entities.EventDefinition, error) {
	m, err := upsert(ctx, r.db,
		Key("name", event.Name, "abi_id", event.AbiID),
		&models.EventDefinition{
			Name:      event.Name,
			AbiID:     event.AbiID,
			Code:      event.Code,
			Inputs:    jsonText(event.Inputs),
			Anonymous: event.Anonymous,
			Data:      jsonText(event.Data),
		},
	)
	if err != nil {
		return nil, err
	}
	return toEventDefinitionEntity(m), nil
}

// ListEventDefinitions lists every event definition of an ABI ordered by name
func (r *artifactRepo) ListEventDefinitions(ctx context.Context, abiID uuid.UUID) ([]*entities.EventDefinition, error) {
	var ms []models.EventDefinition
	if err := r.db.WithContext(ctx).Where("abi_id = ?", abiID).Order("name").Find(&ms).Error; err != nil {
		return nil, err
	}

	events := make([]*entities.EventDefinition, 0, len(ms))
	for i := range ms {
		events = append(events, toEventDefinitionEntity(&ms[i]))
	}
	return events, nil
}

// UpsertBytecode stores deployed bytecode keyed by address and blockchain
func (r *artifactRepo) UpsertBytecode(ctx context.Context, b *entities.Bytecode) (*entities.Bytecode, error) {
	m, err := upsert(ctx, r.db,
		Key("address", b.Address, "blockchain_id", b.BlockchainID),
		&models.Bytecode{
			Address:      b.Address,
			BlockchainID: b.BlockchainID,
			AbiID:        b.AbiID,
			ContractName: b.ContractName,
			Bytecode:     b.Bytecode,
		},
	)
	if err != nil {
		return nil, err
	}
	return &entities.Bytecode{
		ID:           m.ID,
		Address:      m.Address,
		BlockchainID: m.BlockchainID,
		AbiID:        m.AbiID,
		ContractName: m.ContractName,
		Bytecode:     m.Bytecode,
	}, nil
}

// UpsertDevdoc stores the developer NatSpec of an artifact
func (r *artifactRepo) UpsertDevdoc(ctx context.Context, doc *entities.NatspecDoc) (*entities.NatspecDoc, error) {
	m, err := upsert(ctx, r.db,
		Key("deployment_artifact_id", doc.DeploymentArtifactID),
		&models.Devdoc{DeploymentArtifactID: doc.DeploymentArtifactID, Data: jsonText(doc.Data)},
	)
	if err != nil {
		return nil, err
	}
	return &entities.NatspecDoc{ID: m.ID, DeploymentArtifactID: m.DeploymentArtifactID, Data: rawJSON(m.Data)}, nil
}

// UpsertUserdoc stores the user NatSpec of an artifact
func (r *artifactRepo) UpsertUserdoc(ctx context.Context, doc *entities.NatspecDoc) (*entities.NatspecDoc, error) {
	m, err := upsert(ctx, r.db,
		Key("deployment_artifact_id", doc.DeploymentArtifactID),
		&models.Userdoc{DeploymentArtifactID: doc.DeploymentArtifactID, Data: jsonText(doc.Data)},
	)
	if err != nil {
		return nil, err
	}
	return &entities.NatspecDoc{ID: m.ID, DeploymentArtifactID: m.DeploymentArtifactID, Data: rawJSON(m.Data)}, nil
}

// UpsertSourceCode stores verified source keyed by address and blockchain
func (r *artifactRepo) UpsertSourceCode(ctx context.Context, s *entities.SourceCode) (*entities.SourceCode, error) {
	m, err := upsert(ctx, r.db,
		Key("address", s.Address, "blockchain_id", s.BlockchainID),
		&models.SourceCode{
			Address:      s.Address,
			BlockchainID: s.BlockchainID,
			File:         s.File,
			Content:      s.Content,
			Keccak256:    s.Keccak256.String,
			License:      s.License.String,
		},
	)
	if err != nil {
		return nil, err
	}
	return &entities.SourceCode{
		ID:           m.ID,
		Address:      m.Address,
		BlockchainID: m.BlockchainID,
		File:         m.File,
		Content:      m.Content,
		Keccak256:    null.NewString(m.Keccak256, m.Keccak256 != ""),
		License:      null.NewString(m.License, m.License != ""),
	}, nil
}

func toEventDefinitionEntity(m *models.EventDefinition) *entities.EventDefinition {
	return &entities.EventDefinition{
		ID:        m.ID,
		AbiID:     m.AbiID,
		Name:      m.Name,
		Code:      m.Code,
		Inputs:    rawJSON(m.Inputs),
		Anonymous: m.Anonymous,
		Data:      rawJSON(m.Data),
	}
}
