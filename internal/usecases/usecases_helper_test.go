package usecases_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"saas-admin.backend/internal/domain/entities"
	"saas-admin.backend/internal/domain/repositories"
	"saas-admin.backend/internal/infrastructure/models"
	infrarepos "saas-admin.backend/internal/infrastructure/repositories"
	"saas-admin.backend/internal/usecases"
)

const (
	tokenABI = `[
		{"type":"function","name":"transfer","inputs":[],"outputs":[]},
		{"type":"event","name":"Transfer","inputs":[]}
	]`
	factoryABI = `[
		{"type":"function","name":"getSymbols","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string[]"}]},
		{"type":"function","name":"getDiamondAddress","stateMutability":"view","inputs":[{"name":"symbol","type":"string"}],"outputs":[{"name":"","type":"address"}]},
		{"type":"event","name":"DiamondCreated","inputs":[{"name":"symbol","type":"string","indexed":false},{"name":"diamond","type":"address","indexed":true}]}
	]`
)

// testStore is a migrated in-memory record store with every repository wired
type testStore struct {
	db             *gorm.DB
	orgRepo        repositories.OrganizationRepository
	blockchainRepo repositories.BlockchainRepository
	artifactRepo   repositories.ArtifactRepository
	contractRepo   repositories.ContractRepository
	listenerRepo   repositories.EventListenerRepository
	schemaRepo     repositories.SchemaRepository
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", filepath.Base(t.Name()), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	s := &testStore{
		db:             db,
		orgRepo:        infrarepos.NewOrganizationRepository(db),
		blockchainRepo: infrarepos.NewBlockchainRepository(db),
		artifactRepo:   infrarepos.NewArtifactRepository(db),
		contractRepo:   infrarepos.NewContractRepository(db),
		listenerRepo:   infrarepos.NewEventListenerRepository(db),
		schemaRepo:     infrarepos.NewSchemaRepository(db),
	}

	_, err = usecases.NewSchemaUsecase(s.schemaRepo, s.listenerRepo).CreateSchema(context.Background())
	require.NoError(t, err, "create schema")
	return s
}

func (s *testStore) seedOrganization(t *testing.T, name string) uuid.UUID {
	t.Helper()
	org := &models.Organization{Name: name}
	require.NoError(t, s.db.Create(org).Error)
	return org.ID
}

func (s *testStore) count(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Table(table).Count(&n).Error)
	return n
}

// counts snapshots every table touched by an import
func (s *testStore) counts(t *testing.T) map[string]int64 {
	t.Helper()
	out := make(map[string]int64)
	for _, name := range s.schemaRepo.Collections() {
		out[name] = s.count(t, name)
	}
	return out
}

func (s *testStore) newImporter(chain usecases.ChainReader) *usecases.ArtifactImporter {
	return usecases.NewArtifactImporter(s.artifactRepo, s.contractRepo, s.listenerRepo, s.schemaRepo, chain, nil)
}

func (s *testStore) newNetworkImport(chain usecases.ChainReader) *usecases.NetworkImportUsecase {
	return usecases.NewNetworkImportUsecase(s.orgRepo, s.blockchainRepo, s.newImporter(chain), 4, nil)
}

func parsedArtifact(network string, chainID int64, name string, artifact entities.HardhatArtifact) entities.ParsedArtifact {
	return entities.ParsedArtifact{
		Name:        name,
		NetworkName: network,
		NetworkID:   chainID,
		Address:     artifact.Address,
		ABI:         artifact.ABI,
		Artifact:    artifact,
	}
}

// writeNetwork lays out deployments/<network>/.chainId and one json file per artifact
func writeNetwork(t *testing.T, root, network string, chainID int64, files map[string]string) {
	t.Helper()
	dir := filepath.Join(root, network)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".chainId"), []byte(fmt.Sprintf("%d\n", chainID)), 0o644))
	for name, body := range files {
		writeFile(t, filepath.Join(dir, name+".json"), body)
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}
