package repositories

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"saas-admin.backend/internal/domain/entities"
)

func TestArtifactRepository_DeploymentArtifactKey(t *testing.T) {
	db := newTestDB(t)
	migrateAll(t, db)
	repo := NewArtifactRepository(db)
	ctx := context.Background()
	chainID := uuid.New()
	deploymentID := uuid.New()

	first, err := repo.UpsertDeploymentArtifact(ctx, &entities.DeploymentArtifact{
		Name:            "Token",
		ContractName:    "Token",
		Address:         "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		TransactionHash: "0xdeploy",
		BlockchainID:    chainID,
		DeploymentID:    deploymentID,
		BlockNumber:     1,
		Data:            json.RawMessage(`{"address":"0x5FbDB2315678afecb367f032d93F642f64180aa3"}`),
	})
	require.NoError(t, err)
	require.JSONEq(t, "null", string(first.Args))

	second, err := repo.UpsertDeploymentArtifact(ctx, &entities.DeploymentArtifact{
		Name:            "Token",
		ContractName:    "Token",
		Address:         "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		TransactionHash: "0xdeploy",
		BlockchainID:    chainID,
		DeploymentID:    deploymentID,
		BlockNumber:     2,
		Args:            json.RawMessage(`["Token","TKN"]`),
		Data:            json.RawMessage(`{}`),
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, int64(2), second.BlockNumber)
	require.JSONEq(t, `["Token","TKN"]`, string(second.Args))

	// a redeploy with a new transaction is a new artifact
	_, err = repo.UpsertDeploymentArtifact(ctx, &entities.DeploymentArtifact{
		Name:            "Token",
		Address:         "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		TransactionHash: "0xredeploy",
		BlockchainID:    chainID,
		DeploymentID:    deploymentID,
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), countRows(t, db, "deployment_artifacts"))
}

func TestArtifactRepository_AbiMethodsAndEvents(t *testing.T) {
	db := newTestDB(t)
	migrateAll(t, db)
	repo := NewArtifactRepository(db)
	ctx := context.Background()
	chainID := uuid.New()

	abi, err := repo.UpsertAbi(ctx, &entities.Abi{Name: "Token", BlockchainID: chainID, Data: json.RawMessage(`[]`)})
	require.NoError(t, err)
	sameAbi, err := repo.UpsertAbi(ctx, &entities.Abi{Name: "Token", BlockchainID: chainID, Data: json.RawMessage(`[{"type":"fallback"}]`)})
	require.NoError(t, err)
	require.Equal(t, abi.ID, sameAbi.ID)
	require.JSONEq(t, `[{"type":"fallback"}]`, string(sameAbi.Data))

	method, err := repo.UpsertMethod(ctx, &entities.Method{
		AbiID:           abi.ID,
		Name:            "Token.transfer",
		Code:            "0xa9059cbb",
		Inputs:          json.RawMessage(`[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}]`),
		Outputs:         json.RawMessage(`[{"name":"","type":"bool"}]`),
		StateMutability: "nonpayable",
		Data:            json.RawMessage(`{"type":"function","name":"transfer"}`),
	})
	require.NoError(t, err)
	require.Equal(t, "0xa9059cbb", method.Code)

	for _, name := range []string{"Token.Transfer", "Token.Approval"} {
		_, err := repo.UpsertEventDefinition(ctx, &entities.EventDefinition{
			AbiID: abi.ID,
			Name:  name,
			Code:  "0x" + name,
			Data:  json.RawMessage(`{}`),
		})
		require.NoError(t, err)
	}
	_, err = repo.UpsertEventDefinition(ctx, &entities.EventDefinition{AbiID: abi.ID, Name: "Token.Transfer", Anonymous: true})
	require.NoError(t, err)

	events, err := repo.ListEventDefinitions(ctx, abi.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "Token.Approval", events[0].Name)
	require.Equal(t, "Token.Transfer", events[1].Name)
	require.True(t, events[1].Anonymous)

	none, err := repo.ListEventDefinitions(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestArtifactRepository_Attachments(t *testing.T) {
	db := newTestDB(t)
	migrateAll(t, db)
	repo := NewArtifactRepository(db)
	ctx := context.Background()
	chainID := uuid.New()
	artifactID := uuid.New()

	bytecode, err := repo.UpsertBytecode(ctx, &entities.Bytecode{Address: "0x1", BlockchainID: chainID, AbiID: uuid.New(), ContractName: "Token", Bytecode: "0x6080"})
	require.NoError(t, err)
	again, err := repo.UpsertBytecode(ctx, &entities.Bytecode{Address: "0x1", BlockchainID: chainID, AbiID: bytecode.AbiID, ContractName: "Token", Bytecode: "0x6081"})
	require.NoError(t, err)
	require.Equal(t, bytecode.ID, again.ID)
	require.Equal(t, "0x6081", again.Bytecode)

	devdoc, err := repo.UpsertDevdoc(ctx, &entities.NatspecDoc{DeploymentArtifactID: artifactID, Data: json.RawMessage(`{"kind":"dev"}`)})
	require.NoError(t, err)
	userdoc, err := repo.UpsertUserdoc(ctx, &entities.NatspecDoc{DeploymentArtifactID: artifactID, Data: json.RawMessage(`{"kind":"user"}`)})
	require.NoError(t, err)
	require.NotEqual(t, devdoc.ID, userdoc.ID)
	_, err = repo.UpsertDevdoc(ctx, &entities.NatspecDoc{DeploymentArtifactID: artifactID, Data: json.RawMessage(`{"kind":"dev","version":1}`)})
	require.NoError(t, err)
	require.Equal(t, int64(1), countRows(t, db, "devdocs"))

	source, err := repo.UpsertSourceCode(ctx, &entities.SourceCode{
		Address:      "0x1",
		BlockchainID: chainID,
		File:         "contracts/Token.sol",
		Content:      "contract Token {}",
		License:      null.StringFrom("MIT"),
	})
	require.NoError(t, err)
	require.Equal(t, "MIT", source.License.String)
	require.False(t, source.Keccak256.Valid)
}
