package usecases

import (
	"net/url"
	"strings"
)

// placeholderExplorerBase is used for networks without a public explorer. The .invalid TLD never resolves.
const placeholderExplorerBase = "https://explorer.invalid/"

// publicExplorers maps hardhat network names onto their block explorers
var publicExplorers = map[string]string{
	"mainnet":          "https://etherscan.io",
	"ethereum":         "https://etherscan.io",
	"sepolia":          "https://sepolia.etherscan.io",
	"ethereum-sepolia": "https://sepolia.etherscan.io",
	"holesky":          "https://holesky.etherscan.io",
	"polygon":          "https://polygonscan.com",
	"matic":            "https://polygonscan.com",
	"polygon-amoy":     "https://amoy.polygonscan.com",
	"amoy":             "https://amoy.polygonscan.com",
	"arbitrum":         "https://arbiscan.io",
	"arbitrum-sepolia": "https://sepolia.arbiscan.io",
	"optimism":         "https://optimistic.etherscan.io",
	"optimism-sepolia": "https://sepolia-optimism.etherscan.io",
	"base":             "https://basescan.org",
	"base-sepolia":     "https://sepolia.basescan.org",
}

// ExplorerURL returns the explorer stored on a network's Blockchain record
func ExplorerURL(network string) string {
	if explorer, ok := publicExplorers[strings.ToLower(network)]; ok {
		return explorer
	}
	return placeholderExplorerBase + url.PathEscape(network)
}
