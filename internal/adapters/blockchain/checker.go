package blockchain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/grantdao/grantdao-cli/internal/usecase"
)

// requestTimeout bounds each individual RPC round trip
const requestTimeout = 10 * time.Second

// CheckerAdapter implements node, balance and receipt checks using ethclient
type CheckerAdapter struct {
	conn *Connection
}

// NewCheckerAdapter creates a new blockchain checker adapter
func NewCheckerAdapter(conn *Connection) *CheckerAdapter {
	return &CheckerAdapter{conn: conn}
}

// ChainID returns the chain id reported by the node
func (c *CheckerAdapter) ChainID(ctx context.Context) (uint64, error) {
	client, err := c.conn.Client(ctx)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	id, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return id.Uint64(), nil
}

// LatestBlock returns the node's head block number
func (c *CheckerAdapter) LatestBlock(ctx context.Context) (uint64, error) {
	client, err := c.conn.Client(ctx)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	return client.BlockNumber(ctx)
}

// BalanceAt returns the native balance of account at the latest block
func (c *CheckerAdapter) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	client, err := c.conn.Client(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	return client.BalanceAt(ctx, account, nil)
}

// CheckConfirmation looks up the receipt for txHash. A missing receipt means
// the transaction is still pending and is not an error.
func (c *CheckerAdapter) CheckConfirmation(ctx context.Context, txHash common.Hash) (models.Confirmation, error) {
	client, err := c.conn.Client(ctx)
	if err != nil {
		return models.Confirmation{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	receipt, err := client.TransactionReceipt(ctx, txHash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) || strings.Contains(err.Error(), "not found") {
			return models.Confirmation{}, nil
		}
		return models.Confirmation{}, fmt.Errorf("failed to get transaction receipt: %w", err)
	}

	return confirmationFromReceipt(receipt), nil
}

func confirmationFromReceipt(receipt *types.Receipt) models.Confirmation {
	var block uint64
	if receipt.BlockNumber != nil {
		block = receipt.BlockNumber.Uint64()
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return models.Confirmation{Reverted: true, BlockNumber: block}
	}
	return models.Confirmation{Confirmed: true, BlockNumber: block}
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.BlockchainChecker  = (*CheckerAdapter)(nil)
	_ usecase.BalanceReader      = (*CheckerAdapter)(nil)
	_ usecase.TransactionWatcher = (*CheckerAdapter)(nil)
)
