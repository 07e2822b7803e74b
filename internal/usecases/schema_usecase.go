package usecases

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"saas-admin.backend/internal/domain/entities"
	"saas-admin.backend/internal/domain/repositories"
	"saas-admin.backend/pkg/logger"
	"saas-admin.backend/pkg/utils"
)

// organizationsCollection is owned by the platform and survives a purge
const organizationsCollection = "organizations"

// SchemaResult lists what CreateSchema had to create
type SchemaResult struct {
	Created        []string `json:"created"`
	EventLogTables []string `json:"eventLogTables"`
}

// SchemaUsecase creates and empties the collections of the record store
type SchemaUsecase struct {
	schemaRepo   repositories.SchemaRepository
	listenerRepo repositories.EventListenerRepository
}

// NewSchemaUsecase creates a new schema usecase
func NewSchemaUsecase(schemaRepo repositories.SchemaRepository, listenerRepo repositories.EventListenerRepository) *SchemaUsecase {
	return &SchemaUsecase{
		schemaRepo:   schemaRepo,
		listenerRepo: listenerRepo,
	}
}

// CreateSchema ensures every managed collection and every listener's event log collection exists.
// A failing collection is logged and the rest are still attempted.
func (u *SchemaUsecase) CreateSchema(ctx context.Context) (*SchemaResult, error) {
	result := &SchemaResult{Created: []string{}, EventLogTables: []string{}}
	var errs error

	for _, name := range u.schemaRepo.Collections() {
		created, err := u.schemaRepo.EnsureCollection(ctx, name)
		if err != nil {
			logger.Error(ctx, "Failed to create collection", zap.String("collection", name), zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		if created {
			result.Created = append(result.Created, name)
		}
	}

	listeners, err := u.allListeners(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to list event listeners", zap.Error(err))
		return result, multierr.Append(errs, err)
	}

	for _, listener := range listeners {
		created, err := u.schemaRepo.EnsureEventLogCollection(ctx, listener.Collection)
		if err != nil {
			logger.Error(ctx, "Failed to create event log collection", zap.String("collection", listener.Collection), zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		if created {
			result.EventLogTables = append(result.EventLogTables, listener.Collection)
		}
	}

	logger.Info(ctx, "Schema ensured",
		zap.Int("created", len(result.Created)),
		zap.Int("event_log_tables", len(result.EventLogTables)),
	)
	return result, errs
}

// DeleteAllCollections empties every event log collection, then every managed collection in
// reverse dependency order. Organizations are kept. Tables are never dropped.
func (u *SchemaUsecase) DeleteAllCollections(ctx context.Context) error {
	var errs error

	listeners, err := u.allListeners(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to list event listeners", zap.Error(err))
		errs = multierr.Append(errs, err)
	}
	for _, listener := range listeners {
		if err := u.schemaRepo.TruncateCollection(ctx, listener.Collection); err != nil {
			logger.Error(ctx, "Failed to empty event log collection", zap.String("collection", listener.Collection), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}

	collections := u.schemaRepo.Collections()
	for i := len(collections) - 1; i >= 0; i-- {
		name := collections[i]
		if name == organizationsCollection {
			continue
		}
		if err := u.schemaRepo.TruncateCollection(ctx, name); err != nil {
			logger.Error(ctx, "Failed to empty collection", zap.String("collection", name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("empty %s: %w", name, err))
		}
	}

	logger.Warn(ctx, "All collections emptied",
		zap.Int("event_log_collections", len(listeners)),
		zap.Int("failures", len(multierr.Errors(errs))),
	)
	return errs
}

func (u *SchemaUsecase) allListeners(ctx context.Context) ([]*entities.EventListener, error) {
	listeners, _, err := u.listenerRepo.List(ctx, entities.EventListenerFilter{}, utils.PaginationParams{})
	return listeners, err
}
