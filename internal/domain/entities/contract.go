package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Contract names that trigger diamond handling
const (
	DiamondFactoryContractName = "DiamondFactory"
	FacetContractSuffix        = "Facet"
)

// SmartContract is a deployed contract instance on one network
type SmartContract struct {
	ID                    uuid.UUID   `json:"id"`
	Name                  string      `json:"name"`
	Code                  string      `json:"code"`
	Address               string      `json:"address"`
	BlockchainID          uuid.UUID   `json:"blockchainId"`
	AbiID                 uuid.UUID   `json:"abiId"`
	DeploymentArtifactID  uuid.UUID   `json:"deploymentArtifactId"`
	DeploymentTransaction null.String `json:"deploymentTransaction,omitempty"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
}

// DiamondFactory is a factory contract that mints diamond proxies
type DiamondFactory struct {
	ID              uuid.UUID `json:"id"`
	Address         string    `json:"address"`
	BlockchainID    uuid.UUID `json:"blockchainId"`
	NetworkID       int64     `json:"networkId"`
	AbiID           uuid.UUID `json:"abiId"`
	SmartContractID uuid.UUID `json:"smartContractId"`
	DeploymentID    uuid.UUID `json:"deploymentId"`
	Symbols         []string  `json:"symbols"`
}

// Diamond is one proxy instance discovered through its factory
type Diamond struct {
	ID               uuid.UUID `json:"id"`
	Address          string    `json:"address"`
	Symbol           string    `json:"symbol"`
	BlockchainID     uuid.UUID `json:"blockchainId"`
	DiamondFactoryID uuid.UUID `json:"diamondFactoryId"`
}

// DiamondFacet is a facet contract used by the diamond pattern
type DiamondFacet struct {
	ID              uuid.UUID `json:"id"`
	Address         string    `json:"address"`
	BlockchainID    uuid.UUID `json:"blockchainId"`
	AbiID           uuid.UUID `json:"abiId"`
	SmartContractID uuid.UUID `json:"smartContractId"`
	Name            string    `json:"name"`
	Code            string    `json:"code"`
}

// ContractCall addresses a read-only call to a deployed contract
type ContractCall struct {
	Address   string
	ABI       json.RawMessage
	RPCURL    string
	NetworkID int64
}
