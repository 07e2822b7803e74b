package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"saas-admin.backend/internal/domain/entities"
	domainerrors "saas-admin.backend/internal/domain/errors"
	"saas-admin.backend/pkg/logger"
	"saas-admin.backend/pkg/utils"
)

const importLockPrefix = "deployments-import:"

// DeploymentSyncConfig holds the defaults of an organization import
type DeploymentSyncConfig struct {
	Folder      string
	ProjectName string
	// LockRefreshInterval is how often a running import extends its lock. Zero never refreshes.
	LockRefreshInterval time.Duration
}

// DeploymentSyncUsecase imports a hardhat deployments folder for one organization
type DeploymentSyncUsecase struct {
	reader   DeploymentReader
	networks *NetworkImportUsecase
	resolver *RPCURLResolver
	locker   ImportLocker
	cfg      DeploymentSyncConfig
}

// NewDeploymentSyncUsecase creates a new deployment sync usecase. A nil locker falls back to an in-process lock.
func NewDeploymentSyncUsecase(
	reader DeploymentReader,
	networks *NetworkImportUsecase,
	resolver *RPCURLResolver,
	locker ImportLocker,
	cfg DeploymentSyncConfig,
) *DeploymentSyncUsecase {
	if locker == nil {
		locker = NewLocalImportLocker()
	}
	return &DeploymentSyncUsecase{
		reader:   reader,
		networks: networks,
		resolver: resolver,
		locker:   locker,
		cfg:      cfg,
	}
}

// ImportHardhatDeploymentsForOrganization reads folder and imports its networks one after another.
// An abandoned network is reported and its siblings still run. An error is returned only when the
// import cannot start or when every network was abandoned.
func (u *DeploymentSyncUsecase) ImportHardhatDeploymentsForOrganization(ctx context.Context, orgID uuid.UUID, folder, fallbackRPCURL string) (*entities.SyncReport, error) {
	if orgID == uuid.Nil {
		return nil, fmt.Errorf("organization id is required: %w", domainerrors.ErrInvalidInput)
	}
	if folder == "" {
		folder = u.cfg.Folder
	}

	importID := utils.GenerateUUIDv7().String()
	ctx = logger.WithImportID(ctx, importID)

	lockKey := importLockPrefix + orgID.String()
	token, ok, err := u.locker.Acquire(ctx, lockKey)
	if err != nil {
		return nil, fmt.Errorf("acquire import lock: %w", err)
	}
	if !ok {
		return nil, domainerrors.ErrImportInProgress
	}
	defer func() {
		// a cancelled import still frees its lock
		if err := u.locker.Release(context.WithoutCancel(ctx), lockKey, token); err != nil {
			logger.Warn(ctx, "Failed to release import lock", zap.String("organization_id", orgID.String()), zap.Error(err))
		}
	}()
	defer u.keepLock(ctx, lockKey, token)()

	report := &entities.SyncReport{
		ImportID:       importID,
		OrganizationID: orgID,
		Folder:         folder,
		Networks:       []entities.NetworkReport{},
	}

	logger.Info(ctx, "Deployment import started",
		zap.String("organization_id", orgID.String()),
		zap.String("folder", folder),
	)

	set, err := u.reader.ReadDeployments(ctx, folder)
	if err != nil {
		return nil, fmt.Errorf("read deployments: %w", err)
	}
	if set == nil || len(set.Networks) == 0 {
		logger.Info(ctx, "No deployments to import", zap.String("folder", folder))
		return report, nil
	}

	var abandoned error
	for _, network := range set.Networks {
		report.Networks = append(report.Networks, u.importNetwork(ctx, orgID, fallbackRPCURL, network, &abandoned))
	}

	imported, failed := report.Totals()
	logger.Info(ctx, "Deployment import finished",
		zap.String("organization_id", orgID.String()),
		zap.Int("networks", len(report.Networks)),
		zap.Int("imported", imported),
		zap.Int("failed", failed),
	)

	if abandoned != nil && len(multierr.Errors(abandoned)) == len(report.Networks) {
		return report, abandoned
	}
	return report, nil
}

func (u *DeploymentSyncUsecase) importNetwork(ctx context.Context, orgID uuid.UUID, fallbackRPCURL string, network entities.NetworkArtifacts, abandoned *error) entities.NetworkReport {
	rpcURL := u.resolver.Resolve(network.Name, fallbackRPCURL, network.Artifacts)
	nr := entities.NetworkReport{
		Network:  network.Name,
		ChainID:  network.ChainID,
		RPCURL:   utils.RedactRPCURL(rpcURL),
		Imported: []entities.ArtifactImportResult{},
	}

	result, err := u.networks.ImportNetwork(ctx, NetworkImportInput{
		NetworkName:    network.Name,
		ChainID:        network.ChainID,
		Artifacts:      network.Artifacts,
		OrganizationID: orgID,
		ProjectName:    u.cfg.ProjectName,
		RPCURL:         rpcURL,
	})
	if err != nil {
		*abandoned = multierr.Append(*abandoned, fmt.Errorf("network %s: %w", network.Name, err))
		nr.Error = err.Error()
		return nr
	}

	nr.BlockchainID = result.Blockchain.ID
	nr.DeploymentID = result.Deployment.ID
	if result.Imported != nil {
		nr.Imported = result.Imported
	}
	nr.Failed = result.Failed
	nr.Diamonds = result.Diamonds
	return nr
}

// keepLock refreshes the import lock until the returned stop function is called
func (u *DeploymentSyncUsecase) keepLock(ctx context.Context, key, token string) (stop func()) {
	if u.cfg.LockRefreshInterval <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(u.cfg.LockRefreshInterval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				ok, err := u.locker.Refresh(context.WithoutCancel(ctx), key, token)
				if err != nil {
					logger.Warn(ctx, "Failed to refresh import lock", zap.String("lock", key), zap.Error(err))
					continue
				}
				if !ok {
					logger.Error(ctx, "Import lock lost, another import may run concurrently", zap.String("lock", key))
					return
				}
			}
		}
	}()

	return func() {
		close(done)
		wg.Wait()
	}
}
