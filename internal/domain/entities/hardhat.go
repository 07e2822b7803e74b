package entities

import "encoding/json"

// HardhatArtifact is one deployment file as written by hardhat-deploy
type HardhatArtifact struct {
	ContractName     string          `json:"contractName"`
	Address          string          `json:"address"`
	ABI              json.RawMessage `json:"abi"`
	Args             json.RawMessage `json:"args,omitempty"`
	Receipt          json.RawMessage `json:"receipt,omitempty"`
	TransactionHash  string          `json:"transactionHash,omitempty"`
	SolcInputHash    string          `json:"solcInputHash,omitempty"`
	Bytecode         string          `json:"bytecode,omitempty"`
	DeployedBytecode string          `json:"deployedBytecode,omitempty"`
	Libraries        json.RawMessage `json:"libraries,omitempty"`
	StorageLayout    json.RawMessage `json:"storageLayout,omitempty"`
	Metadata         json.RawMessage `json:"metadata,omitempty"`
	Devdoc           json.RawMessage `json:"devdoc,omitempty"`
	Userdoc          json.RawMessage `json:"userdoc,omitempty"`
	RPCURL           string          `json:"rpcUrl,omitempty"`
	SourceCode       *ArtifactSource `json:"sourceCode,omitempty"`

	// Raw keeps the file exactly as read
	Raw json.RawMessage `json:"-"`
}

// ArtifactSource is verified source code embedded in an artifact
type ArtifactSource struct {
	File      string `json:"file"`
	Content   string `json:"content"`
	Keccak256 string `json:"keccak256,omitempty"`
	License   string `json:"license,omitempty"`
}

// ParsedArtifact is an artifact together with the network it was read from
type ParsedArtifact struct {
	Name        string          `json:"name"`
	NetworkName string          `json:"networkName"`
	NetworkID   int64           `json:"networkId"`
	Address     string          `json:"address"`
	ABI         json.RawMessage `json:"abi"`
	Artifact    HardhatArtifact `json:"artifact"`
}

// ContractName prefers the declared contract name and falls back to the file name.
func (p *ParsedArtifact) ContractName() string {
	if p.Artifact.ContractName != "" {
		return p.Artifact.ContractName
	}
	return p.Name
}

// NetworkArtifacts holds every artifact found in one network directory
type NetworkArtifacts struct {
	Name      string           `json:"name"`
	ChainID   int64            `json:"chainId"`
	Artifacts []ParsedArtifact `json:"artifacts"`
}

// ArtifactSet is the result of reading a deployments folder, ordered by network name
type ArtifactSet struct {
	Networks []NetworkArtifacts `json:"networks"`
}

// Len returns the total number of artifacts across networks
func (s *ArtifactSet) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, network := range s.Networks {
		n += len(network.Artifacts)
	}
	return n
}
