package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"saas-admin.backend/internal/domain/entities"
	domainerrors "saas-admin.backend/internal/domain/errors"
	"saas-admin.backend/internal/domain/repositories"
	"saas-admin.backend/pkg/logger"
	"saas-admin.backend/pkg/metrics"
)

// NetworkImportInput describes one network of a deployments folder
type NetworkImportInput struct {
	NetworkName    string
	ChainID        int64
	Artifacts      []entities.ParsedArtifact
	OrganizationID uuid.UUID
	ProjectName    string
	RPCURL         string
}

// NetworkImportResult is the outcome of one network pass.
// Err aggregates the per-artifact failures, which never fail the pass itself.
type NetworkImportResult struct {
	Project    *entities.Project
	Deployment *entities.Deployment
	Blockchain *entities.Blockchain
	Imported   []entities.ArtifactImportResult
	Failed     []entities.ArtifactFailure
	Diamonds   int
	Err        error
}

// NetworkImportUsecase resolves the ownership chain of a network and imports its artifacts
type NetworkImportUsecase struct {
	orgRepo        repositories.OrganizationRepository
	blockchainRepo repositories.BlockchainRepository
	importer       *ArtifactImporter
	maxParallel    int
	metrics        *metrics.ImportMetrics
}

// NewNetworkImportUsecase creates a new network import usecase. maxParallel <= 0 imports every artifact at once.
func NewNetworkImportUsecase(
	orgRepo repositories.OrganizationRepository,
	blockchainRepo repositories.BlockchainRepository,
	importer *ArtifactImporter,
	maxParallel int,
	m *metrics.ImportMetrics,
) *NetworkImportUsecase {
	return &NetworkImportUsecase{
		orgRepo:        orgRepo,
		blockchainRepo: blockchainRepo,
		importer:       importer,
		maxParallel:    maxParallel,
		metrics:        m,
	}
}

// ImportNetwork resolves organization, project, deployment and blockchain in that order,
// then imports every artifact concurrently. A missing organization abandons the network
// before anything is written.
func (u *NetworkImportUsecase) ImportNetwork(ctx context.Context, in NetworkImportInput) (*NetworkImportResult, error) {
	started := time.Now()
	defer u.metrics.ObserveNetwork(in.NetworkName, started)

	fields := []zap.Field{
		zap.String("organization_id", in.OrganizationID.String()),
		zap.String("network", in.NetworkName),
		zap.Int64("chain_id", in.ChainID),
	}

	result, err := u.resolveOwnership(ctx, in)
	if err != nil {
		u.metrics.NetworkProcessed(metrics.OutcomeFailed)
		logger.Error(ctx, "Network import abandoned", append(fields, zap.Error(err))...)
		return nil, err
	}

	outcomes := make([]artifactOutcome, len(in.Artifacts))
	var g errgroup.Group
	if u.maxParallel > 0 {
		g.SetLimit(u.maxParallel)
	}
	for idx := range in.Artifacts {
		g.Go(func() error {
			outcomes[idx] = u.importOne(ctx, in, result, in.Artifacts[idx])
			return nil
		})
	}
	_ = g.Wait()

	for idx, outcome := range outcomes {
		name := in.Artifacts[idx].Name
		if outcome.err != nil {
			result.Failed = append(result.Failed, entities.ArtifactFailure{Artifact: name, Error: outcome.err.Error()})
			result.Err = multierr.Append(result.Err, outcome.err)
			continue
		}
		result.Imported = append(result.Imported, *outcome.result)
		result.Diamonds += outcome.result.DiamondsFound
	}

	u.metrics.NetworkProcessed(metrics.OutcomeImported)
	logger.Info(ctx, "Network imported", append(fields,
		zap.Int("imported", len(result.Imported)),
		zap.Int("failed", len(result.Failed)),
		zap.Int("diamonds", result.Diamonds),
	)...)
	return result, nil
}

type artifactOutcome struct {
	result *entities.ArtifactImportResult
	err    error
}

func (u *NetworkImportUsecase) importOne(ctx context.Context, in NetworkImportInput, res *NetworkImportResult, artifact entities.ParsedArtifact) artifactOutcome {
	imported, err := u.importer.Import(ctx, ArtifactImportInput{
		Artifact:   artifact,
		Blockchain: res.Blockchain,
		Deployment: res.Deployment,
		ProjectID:  res.Project.ID,
		RPCURL:     in.RPCURL,
	})
	if err != nil {
		u.metrics.ArtifactProcessed(in.NetworkName, metrics.OutcomeFailed)
		logger.Error(ctx, "Artifact import failed",
			zap.String("network", in.NetworkName),
			zap.String("artifact", artifact.Name),
			zap.Error(err),
		)
		return artifactOutcome{err: err}
	}

	u.metrics.ArtifactProcessed(in.NetworkName, metrics.OutcomeImported)
	return artifactOutcome{result: imported}
}

func (u *NetworkImportUsecase) resolveOwnership(ctx context.Context, in NetworkImportInput) (*NetworkImportResult, error) {
	if _, err := u.orgRepo.GetByID(ctx, in.OrganizationID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domainerrors.ErrOrganizationNotFound, in.OrganizationID)
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}

	project, err := u.orgRepo.GetOrCreateProject(ctx, in.OrganizationID, in.ProjectName)
	if err != nil {
		return nil, fmt.Errorf("get or create project %q: %w", in.ProjectName, err)
	}

	deployment, err := u.orgRepo.GetOrCreateDeployment(ctx, project.ID, in.NetworkName)
	if err != nil {
		return nil, fmt.Errorf("get or create deployment %q: %w", in.NetworkName, err)
	}

	chain, err := u.blockchainRepo.Upsert(ctx, &entities.Blockchain{
		NetworkID:   in.ChainID,
		Name:        in.NetworkName,
		RPCURL:      in.RPCURL,
		ExplorerURL: null.StringFrom(ExplorerURL(in.NetworkName)),
		IsActive:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert blockchain %d: %w", in.ChainID, err)
	}

	return &NetworkImportResult{
		Project:    project,
		Deployment: deployment,
		Blockchain: chain,
	}, nil
}
