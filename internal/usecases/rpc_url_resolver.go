package usecases

import (
	"fmt"
	"strings"

	"saas-admin.backend/internal/domain/entities"
)

// LocalNodeRPCURL is used when nothing else names an endpoint for a network
const LocalNodeRPCURL = "http://127.0.0.1:8545"

const alchemyURLFormat = "https://%s.g.alchemy.com/v2/%s"

// alchemyNetworks maps hardhat network names onto Alchemy subdomains
var alchemyNetworks = map[string]string{
	"mainnet":          "eth-mainnet",
	"ethereum":         "eth-mainnet",
	"sepolia":          "eth-sepolia",
	"ethereum-sepolia": "eth-sepolia",
	"holesky":          "eth-holesky",
	"polygon":          "polygon-mainnet",
	"matic":            "polygon-mainnet",
	"polygon-amoy":     "polygon-amoy",
	"amoy":             "polygon-amoy",
	"arbitrum":         "arb-mainnet",
	"arbitrum-sepolia": "arb-sepolia",
	"optimism":         "opt-mainnet",
	"optimism-sepolia": "opt-sepolia",
	"base":             "base-mainnet",
	"base-sepolia":     "base-sepolia",
}

// RPCURLResolver picks the RPC endpoint used for one network's chain reads
type RPCURLResolver struct {
	alchemyAPIKey  string
	fallbackRPCURL string
}

// NewRPCURLResolver creates a resolver. fallbackRPCURL is used when a call passes no fallback of its own.
func NewRPCURLResolver(alchemyAPIKey, fallbackRPCURL string) *RPCURLResolver {
	return &RPCURLResolver{
		alchemyAPIKey:  alchemyAPIKey,
		fallbackRPCURL: fallbackRPCURL,
	}
}

// Resolve returns the first endpoint available in this order: managed provider,
// installer fallback, the first artifact rpcUrl, local node.
func (r *RPCURLResolver) Resolve(network, fallback string, artifacts []entities.ParsedArtifact) string {
	if url := r.managedURL(network); url != "" {
		return url
	}

	if fallback = strings.TrimSpace(fallback); fallback != "" {
		return fallback
	}
	if r.fallbackRPCURL != "" {
		return r.fallbackRPCURL
	}

	for _, artifact := range artifacts {
		if url := strings.TrimSpace(artifact.Artifact.RPCURL); url != "" {
			return url
		}
	}

	return LocalNodeRPCURL
}

func (r *RPCURLResolver) managedURL(network string) string {
	if r.alchemyAPIKey == "" {
		return ""
	}
	subdomain, ok := alchemyNetworks[strings.ToLower(network)]
	if !ok {
		return ""
	}
	return fmt.Sprintf(alchemyURLFormat, subdomain, r.alchemyAPIKey)
}
