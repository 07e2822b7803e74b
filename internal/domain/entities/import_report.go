package entities

import (
	"github.com/google/uuid"
)

// ArtifactImportResult summarizes what one artifact produced
type ArtifactImportResult struct {
	Artifact         string    `json:"artifact"`
	ContractName     string    `json:"contractName"`
	Address          string    `json:"address"`
	SmartContractID  uuid.UUID `json:"smartContractId"`
	Methods          int       `json:"methods"`
	Events           int       `json:"events"`
	EventListeners   int       `json:"eventListeners"`
	IsDiamondFactory bool      `json:"isDiamondFactory,omitempty"`
	IsFacet          bool      `json:"isFacet,omitempty"`
	DiamondsFound    int       `json:"diamondsFound,omitempty"`
	SymbolsSkipped   int       `json:"symbolsSkipped,omitempty"`
	DiscoveryAborted bool      `json:"discoveryAborted,omitempty"`
}

// ArtifactFailure records an artifact that could not be imported
type ArtifactFailure struct {
	Artifact string `json:"artifact"`
	Error    string `json:"error"`
}

// NetworkReport summarizes one network pass
type NetworkReport struct {
	Network      string                 `json:"network"`
	ChainID      int64                  `json:"chainId"`
	RPCURL       string                 `json:"rpcUrl"`
	BlockchainID uuid.UUID              `json:"blockchainId,omitempty"`
	DeploymentID uuid.UUID              `json:"deploymentId,omitempty"`
	Imported     []ArtifactImportResult `json:"imported"`
	Failed       []ArtifactFailure      `json:"failed,omitempty"`
	Diamonds     int                    `json:"diamonds"`
	// Error is set when the whole network was abandoned
	Error string `json:"error,omitempty"`
}

// Abandoned reports whether the network import stopped before any artifact ran
func (r *NetworkReport) Abandoned() bool {
	return r.Error != ""
}

// SyncReport is returned by an organization-wide import
type SyncReport struct {
	ImportID       string          `json:"importId"`
	OrganizationID uuid.UUID       `json:"organizationId"`
	Folder         string          `json:"folder"`
	Networks       []NetworkReport `json:"networks"`
}

// Totals returns imported and failed artifact counts across networks
func (r *SyncReport) Totals() (imported, failed int) {
	for _, n := range r.Networks {
		imported += len(n.Imported)
		failed += len(n.Failed)
	}
	return imported, failed
}
