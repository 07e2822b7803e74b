package blockchain

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"saas-admin.backend/internal/domain/entities"
	domainerrors "saas-admin.backend/internal/domain/errors"
)

const factoryABI = `[
	{"type":"function","name":"getSymbols","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string[]"}]},
	{"type":"function","name":"getDiamondAddress","stateMutability":"view","inputs":[{"name":"symbol","type":"string"}],"outputs":[{"name":"","type":"address"}]}
]`

const factoryAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

func mustFactoryABI(t *testing.T) abi.ABI {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(factoryABI))
	require.NoError(t, err)
	return parsed
}

func newTestFactoryReader(t *testing.T, rpcURL string, chainID int64, fn func(ctx context.Context, to string, data []byte) ([]byte, error)) *FactoryReader {
	t.Helper()
	clients := NewClientFactory()
	clients.RegisterEVMClient(rpcURL, NewEVMClientWithCallView(big.NewInt(chainID), fn))
	return NewFactoryReader(clients, time.Second, nil)
}

func factoryCall(rpcURL string, networkID int64) entities.ContractCall {
	return entities.ContractCall{
		Address:   factoryAddress,
		ABI:       []byte(factoryABI),
		RPCURL:    rpcURL,
		NetworkID: networkID,
	}
}

func TestFactoryReader_GetContractSymbols(t *testing.T) {
	parsed := mustFactoryABI(t)
	reader := newTestFactoryReader(t, "mock://factory", 31337, func(_ context.Context, to string, data []byte) ([]byte, error) {
		require.Equal(t, factoryAddress, to)
		require.Equal(t, parsed.Methods[GetSymbolsMethod].ID, data[:4])
		return parsed.Methods[GetSymbolsMethod].Outputs.Pack([]string{"AAA", "BBB"})
	})

	symbols, err := reader.GetContractSymbols(context.Background(), factoryCall("mock://factory", 31337))
	require.NoError(t, err)
	require.Equal(t, []string{"AAA", "BBB"}, symbols)
}

func TestFactoryReader_GetContractSymbols_Empty(t *testing.T) {
	parsed := mustFactoryABI(t)
	reader := newTestFactoryReader(t, "mock://factory", 31337, func(context.Context, string, []byte) ([]byte, error) {
		return parsed.Methods[GetSymbolsMethod].Outputs.Pack([]string{})
	})

	symbols, err := reader.GetContractSymbols(context.Background(), factoryCall("mock://factory", 0))
	require.NoError(t, err)
	require.Empty(t, symbols)
}

func TestFactoryReader_GetContractSymbols_UntypedLegacyEntry(t *testing.T) {
	parsed := mustFactoryABI(t)
	reader := newTestFactoryReader(t, "mock://factory", 31337, func(context.Context, string, []byte) ([]byte, error) {
		return parsed.Methods[GetSymbolsMethod].Outputs.Pack([]string{"AAA"})
	})

	call := factoryCall("mock://factory", 31337)
	call.ABI = []byte(`[
		{"name":"owner","inputs":[],"outputs":[{"name":"","type":"address"}],"constant":true},
		{"name":"getSymbols","inputs":[],"outputs":[{"name":"","type":"string[]"}],"constant":true}
	]`)

	symbols, err := reader.GetContractSymbols(context.Background(), call)
	require.NoError(t, err)
	require.Equal(t, []string{"AAA"}, symbols)
}

func TestFactoryReader_GetDiamondAddress(t *testing.T) {
	parsed := mustFactoryABI(t)
	diamond := common.HexToAddress("0xe7f1725e7734ce288f8367e1bb143e90bb3f0512")

	reader := newTestFactoryReader(t, "mock://factory", 31337, func(_ context.Context, _ string, data []byte) ([]byte, error) {
		args, err := parsed.Methods[GetDiamondAddressMethod].Inputs.Unpack(data[4:])
		require.NoError(t, err)
		require.Equal(t, "AAA", args[0])
		return parsed.Methods[GetDiamondAddressMethod].Outputs.Pack(diamond)
	})

	address, err := reader.GetDiamondAddress(context.Background(), factoryCall("mock://factory", 31337), "AAA")
	require.NoError(t, err)
	require.Equal(t, diamond.Hex(), address)
}

func TestFactoryReader_GetDiamondAddress_ZeroAddress(t *testing.T) {
	parsed := mustFactoryABI(t)
	reader := newTestFactoryReader(t, "mock://factory", 31337, func(context.Context, string, []byte) ([]byte, error) {
		return parsed.Methods[GetDiamondAddressMethod].Outputs.Pack(common.Address{})
	})

	_, err := reader.GetDiamondAddress(context.Background(), factoryCall("mock://factory", 31337), "NOPE")
	require.ErrorIs(t, err, domainerrors.ErrChainRead)
}

func TestFactoryReader_CallFailure(t *testing.T) {
	reader := newTestFactoryReader(t, "mock://factory", 31337, func(context.Context, string, []byte) ([]byte, error) {
		return nil, errors.New("execution reverted")
	})

	_, err := reader.GetContractSymbols(context.Background(), factoryCall("mock://factory", 31337))
	require.ErrorIs(t, err, domainerrors.ErrChainRead)
	require.Contains(t, err.Error(), "execution reverted")
}

func TestFactoryReader_CallFailureHidesProviderKey(t *testing.T) {
	rpcURL := "https://eth-mainnet.g.alchemy.com/v2/secret-key"
	reader := newTestFactoryReader(t, rpcURL, 1, func(context.Context, string, []byte) ([]byte, error) {
		return nil, errors.New(`Post "` + rpcURL + `": dial tcp: connection refused`)
	})

	_, err := reader.GetContractSymbols(context.Background(), factoryCall(rpcURL, 1))
	require.ErrorIs(t, err, domainerrors.ErrChainRead)
	require.NotContains(t, err.Error(), "secret-key")
	require.Contains(t, err.Error(), "v2/REDACTED")
}

func TestFactoryReader_ChainMismatch(t *testing.T) {
	called := false
	reader := newTestFactoryReader(t, "mock://factory", 1, func(context.Context, string, []byte) ([]byte, error) {
		called = true
		return nil, nil
	})

	_, err := reader.GetContractSymbols(context.Background(), factoryCall("mock://factory", 31337))
	require.ErrorIs(t, err, domainerrors.ErrChainRead)
	require.False(t, called)
}

func TestFactoryReader_RejectsBadInput(t *testing.T) {
	reader := newTestFactoryReader(t, "mock://factory", 31337, func(context.Context, string, []byte) ([]byte, error) {
		t.Fatal("no call expected")
		return nil, nil
	})

	call := factoryCall("mock://factory", 31337)
	call.Address = "not-an-address"
	_, err := reader.GetContractSymbols(context.Background(), call)
	require.ErrorIs(t, err, domainerrors.ErrChainRead)

	call = factoryCall("mock://factory", 31337)
	call.ABI = []byte(`[{"type":"function","name":"owner","inputs":[],"outputs":[{"type":"address"}]}]`)
	_, err = reader.GetContractSymbols(context.Background(), call)
	require.ErrorIs(t, err, domainerrors.ErrChainRead)

	call.ABI = []byte(`not json`)
	_, err = reader.GetDiamondAddress(context.Background(), call, "AAA")
	require.ErrorIs(t, err, domainerrors.ErrChainRead)
}

func TestFactoryReader_UndecodableResponse(t *testing.T) {
	reader := newTestFactoryReader(t, "mock://factory", 31337, func(context.Context, string, []byte) ([]byte, error) {
		return []byte{0x01, 0x02}, nil
	})

	_, err := reader.GetContractSymbols(context.Background(), factoryCall("mock://factory", 31337))
	require.ErrorIs(t, err, domainerrors.ErrChainRead)
}

func TestFactoryReader_OverRPC(t *testing.T) {
	parsed := mustFactoryABI(t)
	encoded, err := parsed.Methods[GetSymbolsMethod].Outputs.Pack([]string{"GOLD"})
	require.NoError(t, err)

	srv := newEVMRPCServer(t, "0x"+hex.EncodeToString(encoded))
	defer srv.Close()

	clients := NewClientFactory()
	defer clients.Close()
	reader := NewFactoryReader(clients, time.Second, nil)

	symbols, err := reader.GetContractSymbols(context.Background(), factoryCall(srv.URL, 8453))
	require.NoError(t, err)
	require.Equal(t, []string{"GOLD"}, symbols)
}
