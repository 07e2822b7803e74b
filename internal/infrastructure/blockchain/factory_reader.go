package blockchain

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"saas-admin.backend/internal/domain/entities"
	domainerrors "saas-admin.backend/internal/domain/errors"
	"saas-admin.backend/pkg/logger"
	"saas-admin.backend/pkg/metrics"
	"saas-admin.backend/pkg/utils"
)

// View methods exposed by diamond factory contracts
const (
	GetSymbolsMethod        = "getSymbols"
	GetDiamondAddressMethod = "getDiamondAddress"
)

// FactoryReader reads diamond factory state over RPC
type FactoryReader struct {
	clients *ClientFactory
	timeout time.Duration
	metrics *metrics.ImportMetrics
}

// NewFactoryReader creates a reader. A positive timeout bounds every call.
func NewFactoryReader(clients *ClientFactory, timeout time.Duration, m *metrics.ImportMetrics) *FactoryReader {
	return &FactoryReader{
		clients: clients,
		timeout: timeout,
		metrics: m,
	}
}

// GetContractSymbols calls getSymbols() and returns the symbols of every minted diamond
func (r *FactoryReader) GetContractSymbols(ctx context.Context, call entities.ContractCall) ([]string, error) {
	values, err := r.call(ctx, call, GetSymbolsMethod)
	if err != nil {
		return nil, err
	}

	symbols, ok := values[0].([]string)
	if !ok {
		r.metrics.ChainRead(GetSymbolsMethod, metrics.OutcomeFailed)
		return nil, fmt.Errorf("%w: %s returned %T", domainerrors.ErrChainRead, GetSymbolsMethod, values[0])
	}
	r.metrics.ChainRead(GetSymbolsMethod, metrics.OutcomeImported)
	return symbols, nil
}

// GetDiamondAddress calls getDiamondAddress(symbol) and returns the checksummed address
func (r *FactoryReader) GetDiamondAddress(ctx context.Context, call entities.ContractCall, symbol string) (string, error) {
	values, err := r.call(ctx, call, GetDiamondAddressMethod, symbol)
	if err != nil {
		return "", err
	}

	address, ok := values[0].(common.Address)
	if !ok {
		r.metrics.ChainRead(GetDiamondAddressMethod, metrics.OutcomeFailed)
		return "", fmt.Errorf("%w: %s returned %T", domainerrors.ErrChainRead, GetDiamondAddressMethod, values[0])
	}
	if address == (common.Address{}) {
		r.metrics.ChainRead(GetDiamondAddressMethod, metrics.OutcomeSkipped)
		return "", fmt.Errorf("%w: no diamond registered for symbol %q", domainerrors.ErrChainRead, symbol)
	}
	r.metrics.ChainRead(GetDiamondAddressMethod, metrics.OutcomeImported)
	return address.Hex(), nil
}

func (r *FactoryReader) call(ctx context.Context, call entities.ContractCall, method string, args ...interface{}) ([]interface{}, error) {
	values, err := r.doCall(ctx, call, method, args...)
	if err != nil {
		r.metrics.ChainRead(method, metrics.OutcomeFailed)
		logger.Debug(ctx, "Factory read failed",
			zap.String("method", method),
			zap.String("address", call.Address),
			zap.String("error", utils.RedactRPCURLIn(err.Error(), call.RPCURL)),
		)
		return nil, fmt.Errorf("%w: %s on %s: %s", domainerrors.ErrChainRead, method, call.Address, utils.RedactRPCURLIn(err.Error(), call.RPCURL))
	}
	return values, nil
}

func (r *FactoryReader) doCall(ctx context.Context, call entities.ContractCall, method string, args ...interface{}) ([]interface{}, error) {
	if !common.IsHexAddress(call.Address) {
		return nil, fmt.Errorf("invalid contract address %q", call.Address)
	}

	parsed, err := abi.JSON(bytes.NewReader(utils.NormalizeABI(call.ABI)))
	if err != nil {
		return nil, fmt.Errorf("parse abi: %w", err)
	}
	if _, ok := parsed.Methods[method]; !ok {
		return nil, fmt.Errorf("abi has no %s method", method)
	}

	data, err := parsed.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack: %w", err)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	client, err := r.clients.GetEVMClient(ctx, call.RPCURL)
	if err != nil {
		return nil, err
	}
	if call.NetworkID != 0 && client.ChainID() != nil && client.ChainID().Int64() != call.NetworkID {
		return nil, fmt.Errorf("rpc serves chain %s, expected %d", client.ChainID(), call.NetworkID)
	}

	out, err := client.CallView(ctx, call.Address, data)
	if err != nil {
		return nil, err
	}

	values, err := parsed.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("unpack: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%s returned no values", method)
	}
	return values, nil
}
