package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"saas-admin.backend/internal/domain/entities"
	domainerrors "saas-admin.backend/internal/domain/errors"
	"saas-admin.backend/internal/domain/repositories"
	"saas-admin.backend/internal/infrastructure/models"
)

var unsafeTableChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// maxTableNameLength is the postgres identifier limit; longer names are silently truncated by the server
const maxTableNameLength = 63

const tableHashLength = 8

// SanitizeCollectionName maps a collection name onto the characters allowed in a table name.
// Names over the identifier limit are cut and suffixed with a hash of the full name,
// keeping a trailing event log suffix in place.
func SanitizeCollectionName(name string) string {
	table := unsafeTableChars.ReplaceAllString(name, "_")
	if len(table) <= maxTableNameLength {
		return table
	}

	suffix := ""
	if strings.HasSuffix(table, entities.EventLogCollectionSuffix) {
		suffix = entities.EventLogCollectionSuffix
	}
	sum := sha256.Sum256([]byte(name))
	hash := hex.EncodeToString(sum[:])[:tableHashLength]
	keep := maxTableNameLength - len(suffix) - len(hash) - 1
	return table[:keep] + "_" + hash + suffix
}

type collection struct {
	name  string
	model interface{}
}

// managedCollections is ordered so that every table comes after the tables it points at
var managedCollections = []collection{
	{"organizations", &models.Organization{}},
	{"projects", &models.Project{}},
	{"deployments", &models.Deployment{}},
	{"blockchains", &models.Blockchain{}},
	{"deployment_artifacts", &models.DeploymentArtifact{}},
	{"abis", &models.Abi{}},
	{"methods", &models.Method{}},
	{"event_definitions", &models.EventDefinition{}},
	{"smart_contracts", &models.SmartContract{}},
	{"bytecodes", &models.Bytecode{}},
	{"devdocs", &models.Devdoc{}},
	{"userdocs", &models.Userdoc{}},
	{"source_codes", &models.SourceCode{}},
	{"diamond_factories", &models.DiamondFactory{}},
	{"diamonds", &models.Diamond{}},
	{"diamond_facets", &models.DiamondFacet{}},
	{"event_listeners", &models.EventListener{}},
}

// schemaRepo implements repositories.SchemaRepository
type schemaRepo struct {
	db *gorm.DB
}

// NewSchemaRepository creates a new schema repository
func NewSchemaRepository(db *gorm.DB) repositories.SchemaRepository {
	return &schemaRepo{db: db}
}

// Collections lists managed collections in dependency order
func (r *schemaRepo) Collections() []string {
	names := make([]string, 0, len(managedCollections))
	for _, c := range managedCollections {
		names = append(names, c.name)
	}
	return names
}

// EnsureCollection creates a managed collection from its model when the table is missing
func (r *schemaRepo) EnsureCollection(ctx context.Context, name string) (bool, error) {
	for _, c := range managedCollections {
		if c.name != name {
			continue
		}
		migrator := r.db.WithContext(ctx).Migrator()
		if migrator.HasTable(c.name) {
			return false, nil
		}
		if err := migrator.CreateTable(c.model); err != nil {
			return false, fmt.Errorf("create %s: %w", c.name, err)
		}
		return true, nil
	}
	return false, fmt.Errorf("unknown collection %q: %w", name, domainerrors.ErrInvalidInput)
}

// EnsureEventLogCollection creates an event log table for one listener
func (r *schemaRepo) EnsureEventLogCollection(ctx context.Context, name string) (bool, error) {
	table := SanitizeCollectionName(name)
	if table == "" {
		return false, domainerrors.ErrInvalidInput
	}

	db := r.db.WithContext(ctx)
	if db.Migrator().HasTable(table) {
		return false, nil
	}
	if err := db.Table(table).Migrator().CreateTable(&models.EventLog{}); err != nil {
		return false, fmt.Errorf("create %s: %w", table, err)
	}
	return true, nil
}

// TruncateCollection deletes every row of a table and keeps the table itself
func (r *schemaRepo) TruncateCollection(ctx context.Context, name string) error {
	table := SanitizeCollectionName(name)
	if table == "" {
		return domainerrors.ErrInvalidInput
	}

	db := r.db.WithContext(ctx)
	if !db.Migrator().HasTable(table) {
		return nil
	}
	if err := db.Exec("DELETE FROM ?", clause.Table{Name: table}).Error; err != nil {
		return fmt.Errorf("truncate %s: %w", table, err)
	}
	return nil
}
