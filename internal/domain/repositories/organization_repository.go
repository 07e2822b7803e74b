package repositories

import (
	"context"

	"github.com/google/uuid"
	"saas-admin.backend/internal/domain/entities"
)

// OrganizationRepository resolves the organization -> project -> deployment chain
type OrganizationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Organization, error)
	GetOrCreateProject(ctx context.Context, organizationID uuid.UUID, name string) (*entities.Project, error)
	GetOrCreateDeployment(ctx context.Context, projectID uuid.UUID, name string) (*entities.Deployment, error)
}
