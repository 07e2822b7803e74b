package hardhat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"saas-admin.backend/internal/domain/entities"
	"saas-admin.backend/pkg/logger"
)

const chainIDFile = ".chainId"

// Reader loads hardhat-deploy output: one directory per network holding a .chainId file
// and one JSON artifact per deployed contract.
type Reader struct{}

// NewReader creates a new deployments reader
func NewReader() *Reader {
	return &Reader{}
}

// ReadDeployments parses every network directory under root in name order.
// A missing root yields a nil set. Broken networks and files are logged and skipped.
func (r *Reader) ReadDeployments(ctx context.Context, root string) (*entities.ArtifactSet, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warn(ctx, "Deployments folder is not readable", zap.String("folder", root), zap.Error(err))
		}
		logger.Info(ctx, "No artifacts found", zap.String("folder", root))
		return nil, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read deployments folder %s: %w", root, err)
	}

	set := &entities.ArtifactSet{}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		network, ok := r.readNetwork(ctx, filepath.Join(root, entry.Name()), entry.Name())
		if !ok {
			continue
		}
		set.Networks = append(set.Networks, *network)
	}

	if len(set.Networks) == 0 {
		logger.Info(ctx, "No artifacts found", zap.String("folder", root))
	}
	return set, nil
}

func (r *Reader) readNetwork(ctx context.Context, dir, name string) (*entities.NetworkArtifacts, bool) {
	chainID, err := ReadChainID(dir)
	if err != nil {
		logger.Warn(ctx, "Skipping network without a usable chain id", zap.String("network", name), zap.Error(err))
		return nil, false
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn(ctx, "Skipping unreadable network folder", zap.String("network", name), zap.Error(err))
		return nil, false
	}

	network := &entities.NetworkArtifacts{Name: name, ChainID: chainID}
	for _, entry := range entries {
		fileName := entry.Name()
		if entry.IsDir() || strings.HasPrefix(fileName, ".") || filepath.Ext(fileName) != ".json" {
			continue
		}

		artifact, err := ReadArtifact(filepath.Join(dir, fileName))
		if err != nil {
			logger.Warn(ctx, "Skipping unparsable artifact",
				zap.String("network", name),
				zap.String("artifact", fileName),
				zap.Error(err),
			)
			continue
		}
		if artifact.Address == "" {
			logger.Warn(ctx, "Skipping artifact without an address",
				zap.String("network", name),
				zap.String("artifact", fileName),
			)
			continue
		}

		network.Artifacts = append(network.Artifacts, entities.ParsedArtifact{
			Name:        strings.TrimSuffix(fileName, ".json"),
			NetworkName: name,
			NetworkID:   chainID,
			Address:     artifact.Address,
			ABI:         artifact.ABI,
			Artifact:    *artifact,
		})
	}

	logger.Debug(ctx, "Read network artifacts",
		zap.String("network", name),
		zap.Int64("chain_id", chainID),
		zap.Int("artifacts", len(network.Artifacts)),
	)
	return network, true
}

// ReadChainID reads the trimmed integer stored in dir/.chainId
func ReadChainID(dir string) (int64, error) {
	data, err := os.ReadFile(filepath.Join(dir, chainIDFile))
	if err != nil {
		return 0, err
	}
	chainID, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", chainIDFile, err)
	}
	return chainID, nil
}

// ReadArtifact decodes one artifact file and keeps its raw bytes
func ReadArtifact(path string) (*entities.HardhatArtifact, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var artifact entities.HardhatArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	artifact.Raw = json.RawMessage(data)
	return &artifact, nil
}
