package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"saas-admin.backend/internal/config"
	"saas-admin.backend/internal/domain/repositories"
	"saas-admin.backend/internal/infrastructure/blockchain"
	"saas-admin.backend/internal/infrastructure/hardhat"
	infrarepos "saas-admin.backend/internal/infrastructure/repositories"
	"saas-admin.backend/internal/usecases"
	"saas-admin.backend/pkg/metrics"
	"saas-admin.backend/pkg/redis"
)

// App holds the wired import pipeline shared by the server and the CLI
type App struct {
	Metrics        *metrics.ImportMetrics
	Clients        *blockchain.ClientFactory
	ListenerRepo   repositories.EventListenerRepository
	DeploymentSync *usecases.DeploymentSyncUsecase
	Schema         *usecases.SchemaUsecase
}

// New wires repositories, chain reader and usecases on top of db.
// A nil redisClient keeps the import lock in-process; a nil reg skips metric registration.
func New(cfg *config.Config, db *gorm.DB, redisClient *goredis.Client, reg prometheus.Registerer) *App {
	importMetrics := metrics.NewImportMetrics(reg)

	orgRepo := infrarepos.NewOrganizationRepository(db)
	blockchainRepo := infrarepos.NewBlockchainRepository(db)
	artifactRepo := infrarepos.NewArtifactRepository(db)
	contractRepo := infrarepos.NewContractRepository(db)
	listenerRepo := infrarepos.NewEventListenerRepository(db)
	schemaRepo := infrarepos.NewSchemaRepository(db)

	clients := blockchain.NewClientFactory()
	chainReader := blockchain.NewFactoryReader(clients, cfg.Blockchain.RPCTimeout, importMetrics)

	importer := usecases.NewArtifactImporter(artifactRepo, contractRepo, listenerRepo, schemaRepo, chainReader, importMetrics)
	networks := usecases.NewNetworkImportUsecase(orgRepo, blockchainRepo, importer, cfg.Deploy.MaxParallel, importMetrics)
	resolver := usecases.NewRPCURLResolver(cfg.Blockchain.AlchemyAPIKey, cfg.Deploy.FallbackRPCURL)

	var locker usecases.ImportLocker
	var lockRefresh time.Duration
	if redisClient != nil {
		redisLocker := redis.NewLocker(redisClient, cfg.Deploy.LockTTL)
		locker = redisLocker
		lockRefresh = redisLocker.TTL() / 3
	}

	deploymentSync := usecases.NewDeploymentSyncUsecase(hardhat.NewReader(), networks, resolver, locker, usecases.DeploymentSyncConfig{
		Folder:              cfg.Deploy.Folder,
		ProjectName:         cfg.Deploy.ProjectName,
		LockRefreshInterval: lockRefresh,
	})

	return &App{
		Metrics:        importMetrics,
		Clients:        clients,
		ListenerRepo:   listenerRepo,
		DeploymentSync: deploymentSync,
		Schema:         usecases.NewSchemaUsecase(schemaRepo, listenerRepo),
	}
}

// Close releases the cached RPC clients
func (a *App) Close() {
	a.Clients.Close()
}
