package usecases

import (
	"context"

	"saas-admin.backend/internal/domain/entities"
)

// ChainReader reads diamond factory state from a deployed contract
type ChainReader interface {
	GetContractSymbols(ctx context.Context, call entities.ContractCall) ([]string, error)
	GetDiamondAddress(ctx context.Context, call entities.ContractCall, symbol string) (string, error)
}

// DeploymentReader loads the artifacts of a deployments folder
type DeploymentReader interface {
	ReadDeployments(ctx context.Context, root string) (*entities.ArtifactSet, error)
}

// ImportLocker grants one import at a time per key
type ImportLocker interface {
	Acquire(ctx context.Context, key string) (token string, ok bool, err error)
	Release(ctx context.Context, key, token string) error
	// Refresh extends a held lock. ok is false when token no longer owns key.
	Refresh(ctx context.Context, key, token string) (ok bool, err error)
}
