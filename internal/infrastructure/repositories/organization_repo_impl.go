package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"saas-admin.backend/internal/domain/entities"
	domainerrors "saas-admin.backend/internal/domain/errors"
	"saas-admin.backend/internal/domain/repositories"
	"saas-admin.backend/internal/infrastructure/models"
)

// organizationRepo implements repositories.OrganizationRepository
type organizationRepo struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) repositories.OrganizationRepository {
	return &organizationRepo{db: db}
}

// GetByID gets an organization by ID
func (r *organizationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Organization, error) {
	var m models.Organization
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Organization{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}, nil
}

// GetOrCreateProject returns the organization's project with this name, creating it if needed
func (r *organizationRepo) GetOrCreateProject(ctx context.Context, organizationID uuid.UUID, name string) (*entities.Project, error) {
	m, _, err := getOrCreate(ctx, r.db,
		Key("name", name, "organization_id", organizationID),
		&models.Project{Name: name, OrganizationID: organizationID},
	)
	if err != nil {
		return nil, err
	}
	return &entities.Project{
		ID:             m.ID,
		Name:           m.Name,
		OrganizationID: m.OrganizationID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}, nil
}

// GetOrCreateDeployment returns the project's deployment with this name, creating it if needed
func (r *organizationRepo) GetOrCreateDeployment(ctx context.Context, projectID uuid.UUID, name string) (*entities.Deployment, error) {
	m, _, err := getOrCreate(ctx, r.db,
		Key("name", name, "project_id", projectID),
		&models.Deployment{Name: name, ProjectID: projectID},
	)
	if err != nil {
		return nil, err
	}
	return &entities.Deployment{
		ID:        m.ID,
		Name:      m.Name,
		ProjectID: m.ProjectID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
