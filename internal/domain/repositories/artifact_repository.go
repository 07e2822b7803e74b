package repositories

import (
	"context"

	"github.com/google/uuid"
	"saas-admin.backend/internal/domain/entities"
)

// ArtifactRepository stores a deployment artifact and the records derived from it
type ArtifactRepository interface {
	UpsertDeploymentArtifact(ctx context.Context, artifact *entities.DeploymentArtifact) (*entities.DeploymentArtifact, error)
	UpsertAbi(ctx context.Context, abi *entities.Abi) (*entities.Abi, error)
	UpsertMethod(ctx context.Context, method *entities.Method) (*entities.Method, error)
	UpsertEventDefinition(ctx context.Context, event *entities.EventDefinition) (*entities.EventDefinition, error)
	ListEventDefinitions(ctx context.Context, abiID uuid.UUID) ([]*entities.EventDefinition, error)
	UpsertBytecode(ctx context.Context, bytecode *entities.Bytecode) (*entities.Bytecode, error)
	UpsertDevdoc(ctx context.Context, doc *entities.NatspecDoc) (*entities.NatspecDoc, error)
	UpsertUserdoc(ctx context.Context, doc *entities.NatspecDoc) (*entities.NatspecDoc, error)
	UpsertSourceCode(ctx context.Context, source *entities.SourceCode) (*entities.SourceCode, error)
}
