package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"saas-admin.backend/internal/domain/entities"
	"saas-admin.backend/internal/domain/repositories"
	"saas-admin.backend/pkg/logger"
	"saas-admin.backend/pkg/metrics"
	"saas-admin.backend/pkg/utils"
)

// ArtifactImportInput is one artifact plus the records its network pass already resolved
type ArtifactImportInput struct {
	Artifact   entities.ParsedArtifact
	Blockchain *entities.Blockchain
	Deployment *entities.Deployment
	ProjectID  uuid.UUID
	RPCURL     string
}

// ArtifactImporter stores one parsed artifact and every record derived from it
type ArtifactImporter struct {
	artifactRepo repositories.ArtifactRepository
	contractRepo repositories.ContractRepository
	listenerRepo repositories.EventListenerRepository
	schemaRepo   repositories.SchemaRepository
	abiParser    *AbiParser
	chainReader  ChainReader
	metrics      *metrics.ImportMetrics
}

// NewArtifactImporter creates a new artifact importer. schemaRepo may be nil, in which case
// event log collections are left to CreateSchema.
func NewArtifactImporter(
	artifactRepo repositories.ArtifactRepository,
	contractRepo repositories.ContractRepository,
	listenerRepo repositories.EventListenerRepository,
	schemaRepo repositories.SchemaRepository,
	chainReader ChainReader,
	m *metrics.ImportMetrics,
) *ArtifactImporter {
	return &ArtifactImporter{
		artifactRepo: artifactRepo,
		contractRepo: contractRepo,
		listenerRepo: listenerRepo,
		schemaRepo:   schemaRepo,
		abiParser:    NewAbiParser(artifactRepo),
		chainReader:  chainReader,
		metrics:      m,
	}
}

// Import runs the artifact through every import step in order. Any error names the artifact.
func (i *ArtifactImporter) Import(ctx context.Context, in ArtifactImportInput) (*entities.ArtifactImportResult, error) {
	result, err := i.importArtifact(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("artifact %s: %w", in.Artifact.Name, err)
	}
	return result, nil
}

func (i *ArtifactImporter) importArtifact(ctx context.Context, in ArtifactImportInput) (*entities.ArtifactImportResult, error) {
	parsed := in.Artifact
	hardhat := parsed.Artifact
	contractName := parsed.ContractName()
	chain := in.Blockchain

	result := &entities.ArtifactImportResult{
		Artifact:     parsed.Name,
		ContractName: contractName,
		Address:      parsed.Address,
	}

	// 1. Deployment artifact
	artifact, err := i.artifactRepo.UpsertDeploymentArtifact(ctx, deploymentArtifactFrom(parsed, chain.ID, in.Deployment.ID))
	if err != nil {
		return nil, fmt.Errorf("upsert deployment artifact: %w", err)
	}

	// 2. ABI with its methods and events
	abiData := parsed.ABI
	if len(abiData) == 0 {
		abiData = json.RawMessage("[]")
	}
	abiRecord, err := i.artifactRepo.UpsertAbi(ctx, &entities.Abi{
		Name:         parsed.Name,
		BlockchainID: chain.ID,
		Data:         abiData,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert abi: %w", err)
	}
	parsedAbi, err := i.abiParser.Parse(ctx, abiRecord, abiData)
	if err != nil {
		return nil, err
	}
	result.Methods = len(parsedAbi.Methods)
	result.Events = len(parsedAbi.Events)

	// 3. Smart contract
	contract, err := i.contractRepo.UpsertSmartContract(ctx, &entities.SmartContract{
		Name:                  contractName,
		Code:                  strings.ToUpper(contractName),
		Address:               parsed.Address,
		BlockchainID:          chain.ID,
		AbiID:                 abiRecord.ID,
		DeploymentArtifactID:  artifact.ID,
		DeploymentTransaction: null.NewString(artifact.TransactionHash, artifact.TransactionHash != ""),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert smart contract: %w", err)
	}
	result.SmartContractID = contract.ID

	// 4. NatSpec docs
	if present(hardhat.Devdoc) {
		if _, err := i.artifactRepo.UpsertDevdoc(ctx, &entities.NatspecDoc{DeploymentArtifactID: artifact.ID, Data: hardhat.Devdoc}); err != nil {
			return nil, fmt.Errorf("upsert devdoc: %w", err)
		}
	}
	if present(hardhat.Userdoc) {
		if _, err := i.artifactRepo.UpsertUserdoc(ctx, &entities.NatspecDoc{DeploymentArtifactID: artifact.ID, Data: hardhat.Userdoc}); err != nil {
			return nil, fmt.Errorf("upsert userdoc: %w", err)
		}
	}

	// 5. Bytecode
	if hardhat.DeployedBytecode != "" {
		_, err := i.artifactRepo.UpsertBytecode(ctx, &entities.Bytecode{
			Address:      parsed.Address,
			BlockchainID: chain.ID,
			AbiID:        abiRecord.ID,
			ContractName: contractName,
			Bytecode:     hardhat.DeployedBytecode,
		})
		if err != nil {
			return nil, fmt.Errorf("upsert bytecode: %w", err)
		}
	}

	// 6. Source code
	if src := hardhat.SourceCode; src != nil {
		_, err := i.artifactRepo.UpsertSourceCode(ctx, &entities.SourceCode{
			Address:      parsed.Address,
			BlockchainID: chain.ID,
			File:         src.File,
			Content:      src.Content,
			Keccak256:    null.NewString(src.Keccak256, src.Keccak256 != ""),
			License:      null.NewString(src.License, src.License != ""),
		})
		if err != nil {
			return nil, fmt.Errorf("upsert source code: %w", err)
		}
	}

	// 7. Diamond kinds
	if contractName == entities.DiamondFactoryContractName {
		result.IsDiamondFactory = true
		if err := i.importDiamondFactory(ctx, in, abiRecord, contract, result); err != nil {
			return nil, err
		}
	}
	if strings.HasSuffix(contractName, entities.FacetContractSuffix) {
		result.IsFacet = true
		_, err := i.contractRepo.UpsertDiamondFacet(ctx, &entities.DiamondFacet{
			Address:         parsed.Address,
			BlockchainID:    chain.ID,
			AbiID:           abiRecord.ID,
			SmartContractID: contract.ID,
			Name:            contractName,
			Code:            contract.Code,
		})
		if err != nil {
			return nil, fmt.Errorf("upsert diamond facet: %w", err)
		}
	}

	// 8. Event listeners
	listeners, err := i.registerEventListeners(ctx, in, abiRecord)
	if err != nil {
		return nil, err
	}
	result.EventListeners = listeners

	return result, nil
}

// importDiamondFactory stores the factory and discovers its diamonds.
// Chain read failures are logged and never returned.
func (i *ArtifactImporter) importDiamondFactory(ctx context.Context, in ArtifactImportInput, abiRecord *entities.Abi, contract *entities.SmartContract, result *entities.ArtifactImportResult) error {
	chain := in.Blockchain
	factory := &entities.DiamondFactory{
		Address:         in.Artifact.Address,
		BlockchainID:    chain.ID,
		NetworkID:       chain.NetworkID,
		AbiID:           abiRecord.ID,
		SmartContractID: contract.ID,
		DeploymentID:    in.Deployment.ID,
	}
	stored, err := i.contractRepo.UpsertDiamondFactory(ctx, factory)
	if err != nil {
		return fmt.Errorf("upsert diamond factory: %w", err)
	}

	call := entities.ContractCall{
		Address:   in.Artifact.Address,
		ABI:       abiRecord.Data,
		RPCURL:    in.RPCURL,
		NetworkID: chain.NetworkID,
	}
	fields := []zap.Field{
		zap.String("network", in.Artifact.NetworkName),
		zap.String("factory", in.Artifact.Address),
		zap.String("rpc_url", utils.RedactRPCURL(in.RPCURL)),
	}

	symbols, err := i.chainReader.GetContractSymbols(ctx, call)
	if err != nil {
		result.DiscoveryAborted = true
		logger.Warn(ctx, "Failed to enumerate diamond factory symbols", append(fields, zap.Error(err))...)
		return nil
	}

	for _, symbol := range symbols {
		address, err := i.chainReader.GetDiamondAddress(ctx, call, symbol)
		if err != nil {
			result.SymbolsSkipped++
			logger.Warn(ctx, "Failed to resolve diamond address", append(fields, zap.String("symbol", symbol), zap.Error(err))...)
			continue
		}

		_, err = i.contractRepo.UpsertDiamond(ctx, &entities.Diamond{
			Address:          address,
			Symbol:           symbol,
			BlockchainID:     chain.ID,
			DiamondFactoryID: stored.ID,
		})
		if err != nil {
			result.SymbolsSkipped++
			logger.Warn(ctx, "Failed to store diamond", append(fields, zap.String("symbol", symbol), zap.Error(err))...)
			continue
		}
		result.DiamondsFound++
		i.metrics.DiamondDiscovered(in.Artifact.NetworkName)
	}

	factory.Symbols = symbols
	if factory.Symbols == nil {
		factory.Symbols = []string{}
	}
	if _, err := i.contractRepo.UpsertDiamondFactory(ctx, factory); err != nil {
		logger.Warn(ctx, "Failed to store diamond factory symbols", append(fields, zap.Error(err))...)
	}

	logger.Info(ctx, "Diamond factory imported",
		append(fields, zap.Int("symbols", len(symbols)), zap.Int("diamonds", result.DiamondsFound))...,
	)
	return nil
}

// registerEventListeners ensures one listener per event definition of the ABI
func (i *ArtifactImporter) registerEventListeners(ctx context.Context, in ArtifactImportInput, abiRecord *entities.Abi) (int, error) {
	definitions, err := i.artifactRepo.ListEventDefinitions(ctx, abiRecord.ID)
	if err != nil {
		return 0, fmt.Errorf("list event definitions: %w", err)
	}

	for _, def := range definitions {
		name := EventListenerName(abiRecord.Name, def.Name)
		listener, created, err := i.listenerRepo.Ensure(ctx, &entities.EventListener{
			Name:         name,
			NetworkID:    in.Blockchain.NetworkID,
			ProjectID:    in.ProjectID,
			DefinitionID: def.ID,
			Address:      in.Artifact.Address,
			Collection:   name + entities.EventLogCollectionSuffix,
			Enabled:      true,
		})
		if err != nil {
			return 0, fmt.Errorf("ensure event listener %s: %w", name, err)
		}

		if created && i.schemaRepo != nil {
			if _, err := i.schemaRepo.EnsureEventLogCollection(ctx, listener.Collection); err != nil {
				logger.Warn(ctx, "Failed to create event log collection",
					zap.String("collection", listener.Collection),
					zap.Error(err),
				)
			}
		}
	}
	return len(definitions), nil
}

// EventListenerName joins the ABI name and the bare event name, so Token.Transfer becomes TokenTransfer
func EventListenerName(abiName, definitionName string) string {
	return abiName + strings.TrimPrefix(definitionName, abiName+".")
}

func deploymentArtifactFrom(parsed entities.ParsedArtifact, blockchainID, deploymentID uuid.UUID) *entities.DeploymentArtifact {
	hardhat := parsed.Artifact
	raw := hardhat.Raw
	if len(raw) == 0 {
		raw, _ = json.Marshal(hardhat)
	}

	receipt := gjson.GetBytes(raw, "receipt")
	txHash := hardhat.TransactionHash
	if txHash == "" {
		txHash = receipt.Get("transactionHash").String()
	}

	var args json.RawMessage
	if present(hardhat.Args) {
		args = hardhat.Args
	}

	return &entities.DeploymentArtifact{
		Name:            parsed.Name,
		ContractName:    parsed.ContractName(),
		Address:         parsed.Address,
		TransactionHash: txHash,
		BlockchainID:    blockchainID,
		DeploymentID:    deploymentID,
		BlockNumber:     receipt.Get("blockNumber").Int(),
		GasUsed:         bigNumberString(receipt.Get("gasUsed")),
		Deployer:        receipt.Get("from").String(),
		SolcInputHash:   hardhat.SolcInputHash,
		Args:            args,
		Data:            raw,
	}
}

// bigNumberString reads plain numbers, strings and ethers {"type":"BigNumber","hex":...} objects
func bigNumberString(r gjson.Result) string {
	if r.IsObject() {
		return r.Get("hex").String()
	}
	return r.String()
}

func present(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s != "" && s != "null"
}
