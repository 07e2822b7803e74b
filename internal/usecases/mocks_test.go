package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"saas-admin.backend/internal/domain/entities"
	"saas-admin.backend/pkg/utils"
)

// Mock ChainReader
type MockChainReader struct {
	mock.Mock
}

func (m *MockChainReader) GetContractSymbols(ctx context.Context, call entities.ContractCall) ([]string, error) {
	args := m.Called(ctx, call)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockChainReader) GetDiamondAddress(ctx context.Context, call entities.ContractCall, symbol string) (string, error) {
	args := m.Called(ctx, call, symbol)
	return args.String(0), args.Error(1)
}

// Mock DeploymentReader
type MockDeploymentReader struct {
	mock.Mock
}

func (m *MockDeploymentReader) ReadDeployments(ctx context.Context, root string) (*entities.ArtifactSet, error) {
	args := m.Called(ctx, root)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ArtifactSet), args.Error(1)
}

// Mock ImportLocker
type MockImportLocker struct {
	mock.Mock
}

func (m *MockImportLocker) Acquire(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockImportLocker) Release(ctx context.Context, key, token string) error {
	return m.Called(ctx, key, token).Error(0)
}

func (m *MockImportLocker) Refresh(ctx context.Context, key, token string) (bool, error) {
	args := m.Called(ctx, key, token)
	return args.Bool(0), args.Error(1)
}

// Mock OrganizationRepository
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) GetOrCreateProject(ctx context.Context, organizationID uuid.UUID, name string) (*entities.Project, error) {
	args := m.Called(ctx, organizationID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *MockOrganizationRepository) GetOrCreateDeployment(ctx context.Context, projectID uuid.UUID, name string) (*entities.Deployment, error) {
	args := m.Called(ctx, projectID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Deployment), args.Error(1)
}

// Mock BlockchainRepository
type MockBlockchainRepository struct {
	mock.Mock
}

func (m *MockBlockchainRepository) GetByNetworkID(ctx context.Context, networkID int64) (*entities.Blockchain, error) {
	args := m.Called(ctx, networkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Blockchain), args.Error(1)
}

func (m *MockBlockchainRepository) Upsert(ctx context.Context, chain *entities.Blockchain) (*entities.Blockchain, error) {
	args := m.Called(ctx, chain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Blockchain), args.Error(1)
}

// Mock SchemaRepository
type MockSchemaRepository struct {
	mock.Mock
}

func (m *MockSchemaRepository) Collections() []string {
	return m.Called().Get(0).([]string)
}

func (m *MockSchemaRepository) EnsureCollection(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockSchemaRepository) EnsureEventLogCollection(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockSchemaRepository) TruncateCollection(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

// Mock EventListenerRepository
type MockEventListenerRepository struct {
	mock.Mock
}

func (m *MockEventListenerRepository) Ensure(ctx context.Context, listener *entities.EventListener) (*entities.EventListener, bool, error) {
	args := m.Called(ctx, listener)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*entities.EventListener), args.Bool(1), args.Error(2)
}

func (m *MockEventListenerRepository) List(ctx context.Context, filter entities.EventListenerFilter, pagination utils.PaginationParams) ([]*entities.EventListener, int64, error) {
	args := m.Called(ctx, filter, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.EventListener), args.Get(1).(int64), args.Error(2)
}
