package hardhat

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenArtifact = `{
  "contractName": "Token",
  "address": "0x5FbDB2315678afecb367f032d93F642f64180aa3",
  "abi": [{"type":"event","name":"Transfer","inputs":[]}],
  "transactionHash": "0xdeploy",
  "receipt": {"from": "0xf39F", "blockNumber": 1, "gasUsed": "21000"},
  "deployedBytecode": "0x6080",
  "rpcUrl": "http://node:8545",
  "sourceCode": {"file": "contracts/Token.sol", "content": "contract Token {}", "license": "MIT"}
}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestReadDeployments_GroupsByNetwork(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sepolia", ".chainId"), "11155111\n")
	writeFile(t, filepath.Join(root, "sepolia", "Token.json"), tokenArtifact)
	writeFile(t, filepath.Join(root, "sepolia", "Broken.json"), `{"address":`)
	writeFile(t, filepath.Join(root, "sepolia", "NoAddress.json"), `{"contractName":"NoAddress","abi":[]}`)
	writeFile(t, filepath.Join(root, "sepolia", "README.md"), "notes")
	writeFile(t, filepath.Join(root, "sepolia", ".migrations.json"), `{}`)
	writeFile(t, filepath.Join(root, "sepolia", "solcInputs", "abc.json"), `{}`)
	writeFile(t, filepath.Join(root, "localhost", ".chainId"), "31337")
	writeFile(t, filepath.Join(root, "localhost", "Token.json"), tokenArtifact)
	writeFile(t, filepath.Join(root, "nochain", "Token.json"), tokenArtifact)
	writeFile(t, filepath.Join(root, "badchain", ".chainId"), "mainnet")
	writeFile(t, filepath.Join(root, "badchain", "Token.json"), tokenArtifact)

	set, err := NewReader().ReadDeployments(context.Background(), root)
	require.NoError(t, err)
	require.NotNil(t, set)
	require.Len(t, set.Networks, 2)
	assert.Equal(t, 2, set.Len())

	localhost := set.Networks[0]
	assert.Equal(t, "localhost", localhost.Name)
	assert.Equal(t, int64(31337), localhost.ChainID)

	sepolia := set.Networks[1]
	require.Len(t, sepolia.Artifacts, 1)
	token := sepolia.Artifacts[0]
	assert.Equal(t, "Token", token.Name)
	assert.Equal(t, "sepolia", token.NetworkName)
	assert.Equal(t, int64(11155111), token.NetworkID)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", token.Address)
	assert.JSONEq(t, `[{"type":"event","name":"Transfer","inputs":[]}]`, string(token.ABI))
	assert.Equal(t, "Token", token.ContractName())
	assert.Equal(t, "http://node:8545", token.Artifact.RPCURL)
	require.NotNil(t, token.Artifact.SourceCode)
	assert.Equal(t, "MIT", token.Artifact.SourceCode.License)
	assert.JSONEq(t, tokenArtifact, string(token.Artifact.Raw))
}

func TestReadDeployments_MissingRoot(t *testing.T) {
	set, err := NewReader().ReadDeployments(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Nil(t, set)
	assert.Equal(t, 0, set.Len())
}

func TestReadDeployments_RootIsAFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deployments")
	writeFile(t, path, "not a folder")

	set, err := NewReader().ReadDeployments(context.Background(), path)
	require.NoError(t, err)
	assert.Nil(t, set)
}

func TestReadDeployments_EmptyRoot(t *testing.T) {
	set, err := NewReader().ReadDeployments(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, set)
	assert.Empty(t, set.Networks)
}

func TestReadChainID(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadChainID(dir)
	require.ErrorIs(t, err, os.ErrNotExist)

	writeFile(t, filepath.Join(dir, ".chainId"), "  137 \n")
	chainID, err := ReadChainID(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(137), chainID)
}

func TestReadArtifact_WithoutContractName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Proxy.json")
	writeFile(t, path, `{"address":"0x1","abi":[]}`)

	artifact, err := ReadArtifact(path)
	require.NoError(t, err)
	assert.Empty(t, artifact.ContractName)

	_, err = ReadArtifact(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
