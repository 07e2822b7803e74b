package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DeploymentArtifact is the stored copy of one parsed artifact
type DeploymentArtifact struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	ContractName    string          `json:"contractName"`
	Address         string          `json:"address"`
	TransactionHash string          `json:"transactionHash"`
	BlockchainID    uuid.UUID       `json:"blockchainId"`
	DeploymentID    uuid.UUID       `json:"deploymentId"`
	BlockNumber     int64           `json:"blockNumber"`
	GasUsed         string          `json:"gasUsed,omitempty"`
	Deployer        string          `json:"deployer,omitempty"`
	SolcInputHash   string          `json:"solcInputHash,omitempty"`
	Args            json.RawMessage `json:"args,omitempty"`
	Data            json.RawMessage `json:"data"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Abi is a named ABI on one network
type Abi struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	BlockchainID uuid.UUID       `json:"blockchainId"`
	Data         json.RawMessage `json:"data"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Method is one function of an ABI, named <Abi>.<function>
type Method struct {
	ID              uuid.UUID       `json:"id"`
	AbiID           uuid.UUID       `json:"abiId"`
	Name            string          `json:"name"`
	Code            string          `json:"code"`
	Inputs          json.RawMessage `json:"inputs"`
	Outputs         json.RawMessage `json:"outputs"`
	StateMutability string          `json:"stateMutability,omitempty"`
	Data            json.RawMessage `json:"data"`
}

// EventDefinition is one event of an ABI, named <Abi>.<event>
type EventDefinition struct {
	ID        uuid.UUID       `json:"id"`
	AbiID     uuid.UUID       `json:"abiId"`
	Name      string          `json:"name"`
	Code      string          `json:"code"`
	Inputs    json.RawMessage `json:"inputs"`
	Anonymous bool            `json:"anonymous"`
	Data      json.RawMessage `json:"data"`
}

// Bytecode is the deployed bytecode of a contract
type Bytecode struct {
	ID           uuid.UUID `json:"id"`
	Address      string    `json:"address"`
	BlockchainID uuid.UUID `json:"blockchainId"`
	AbiID        uuid.UUID `json:"abiId"`
	ContractName string    `json:"contractName"`
	Bytecode     string    `json:"bytecode"`
}

// SourceCode is verified source shipped with an artifact
type SourceCode struct {
	ID           uuid.UUID   `json:"id"`
	Address      string      `json:"address"`
	BlockchainID uuid.UUID   `json:"blockchainId"`
	File         string      `json:"file"`
	Content      string      `json:"content"`
	Keccak256    null.String `json:"keccak256,omitempty"`
	License      null.String `json:"license,omitempty"`
}

// NatspecDoc is a devdoc or userdoc blob attached to an artifact
type NatspecDoc struct {
	ID                   uuid.UUID       `json:"id"`
	DeploymentArtifactID uuid.UUID       `json:"deploymentArtifactId"`
	Data                 json.RawMessage `json:"data"`
}
