package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	domainerrors "saas-admin.backend/internal/domain/errors"
)

func TestOrganizationRepository_ResolveChain(t *testing.T) {
	db := newTestDB(t)
	migrateAll(t, db)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()
	orgID := seedOrganization(t, db, "acme")

	org, err := repo.GetByID(ctx, orgID)
	require.NoError(t, err)
	require.Equal(t, "acme", org.Name)

	project, err := repo.GetOrCreateProject(ctx, orgID, "Hardhat Deployments")
	require.NoError(t, err)
	again, err := repo.GetOrCreateProject(ctx, orgID, "Hardhat Deployments")
	require.NoError(t, err)
	require.Equal(t, project.ID, again.ID)

	mainnet, err := repo.GetOrCreateDeployment(ctx, project.ID, "mainnet")
	require.NoError(t, err)
	sepolia, err := repo.GetOrCreateDeployment(ctx, project.ID, "sepolia")
	require.NoError(t, err)
	require.NotEqual(t, mainnet.ID, sepolia.ID)
	require.Equal(t, project.ID, sepolia.ProjectID)

	require.Equal(t, int64(1), countRows(t, db, "projects"))
	require.Equal(t, int64(2), countRows(t, db, "deployments"))
}

func TestOrganizationRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	migrateAll(t, db)
	repo := NewOrganizationRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOrganizationRepository_DatabaseErrors(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.Error(t, err)
	require.NotErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetOrCreateProject(ctx, uuid.New(), "p")
	require.Error(t, err)

	_, err = repo.GetOrCreateDeployment(ctx, uuid.New(), "d")
	require.Error(t, err)
}
