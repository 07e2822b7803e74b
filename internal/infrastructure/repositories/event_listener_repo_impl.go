package repositories

import (
	"context"

	"gorm.io/gorm"
	"saas-admin.backend/internal/domain/entities"
	"saas-admin.backend/internal/domain/repositories"
	"saas-admin.backend/internal/infrastructure/models"
	"saas-admin.backend/pkg/utils"
)

// eventListenerRepo implements repositories.EventListenerRepository
type eventListenerRepo struct {
	db *gorm.DB
}

// NewEventListenerRepository creates a new event listener repository
func NewEventListenerRepository(db *gorm.DB) repositories.EventListenerRepository {
	return &eventListenerRepo{db: db}
}

// Ensure registers a listener keyed by name, network and project
func (r *eventListenerRepo) Ensure(ctx context.Context, listener *entities.EventListener) (*entities.EventListener, bool, error) {
	m, created, err := getOrCreate(ctx, r.db,
		Key("name", listener.Name, "network_id", listener.NetworkID, "project_id", listener.ProjectID),
		&models.EventListener{
			Name:         listener.Name,
			NetworkID:    listener.NetworkID,
			ProjectID:    listener.ProjectID,
			DefinitionID: listener.DefinitionID,
			Address:      listener.Address,
			Collection:   listener.Collection,
			Enabled:      listener.Enabled,
		},
	)
	if err != nil {
		return nil, false, err
	}

	if !created && (m.Address != listener.Address || m.DefinitionID != listener.DefinitionID || m.Collection != listener.Collection) {
		err := r.db.WithContext(ctx).Model(m).Updates(map[string]interface{}{
			"address":       listener.Address,
			"definition_id": listener.DefinitionID,
			"collection":    listener.Collection,
		}).Error
		if err != nil {
			return nil, false, err
		}
		m.Address = listener.Address
		m.DefinitionID = listener.DefinitionID
		m.Collection = listener.Collection
	}
	return toEventListenerEntity(m), created, nil
}

// List lists listeners matching the filter ordered by name
func (r *eventListenerRepo) List(ctx context.Context, filter entities.EventListenerFilter, pagination utils.PaginationParams) ([]*entities.EventListener, int64, error) {
	var ms []models.EventListener
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.EventListener{})

	if filter.NetworkID != nil {
		query = query.Where("network_id = ?", *filter.NetworkID)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Enabled != nil {
		query = query.Where("enabled = ?", *filter.Enabled)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("name, network_id")
	if pagination.Paged() {
		query = query.Limit(pagination.Limit).Offset(pagination.Offset())
	}

	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	listeners := make([]*entities.EventListener, 0, len(ms))
	for i := range ms {
		listeners = append(listeners, toEventListenerEntity(&ms[i]))
	}
	return listeners, totalCount, nil
}

func toEventListenerEntity(m *models.EventListener) *entities.EventListener {
	return &entities.EventListener{
		ID:           m.ID,
		Name:         m.Name,
		NetworkID:    m.NetworkID,
		ProjectID:    m.ProjectID,
		DefinitionID: m.DefinitionID,
		Address:      m.Address,
		Collection:   m.Collection,
		Enabled:      m.Enabled,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
