package governor

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/grantdao/grantdao-cli/internal/adapters/abi/bindings"
	"github.com/grantdao/grantdao-cli/internal/adapters/blockchain"
	"github.com/grantdao/grantdao-cli/internal/adapters/wallet"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/grantdao/grantdao-cli/internal/usecase"
)

// WriterAdapter signs and sends GrantGovernor transactions with the bound account
type WriterAdapter struct {
	conn     *blockchain.Connection
	account  *wallet.AccountAdapter
	address  common.Address
	chainID  uint64
	governor *bindings.GrantGovernor
	log      *slog.Logger
}

// NewWriterAdapter creates a new governor writer adapter
func NewWriterAdapter(cfg *config.RuntimeConfig, conn *blockchain.Connection, account *wallet.AccountAdapter, log *slog.Logger) *WriterAdapter {
	w := &WriterAdapter{
		conn:     conn,
		account:  account,
		address:  cfg.Contracts.Governor,
		governor: bindings.NewGrantGovernor(),
		log:      log,
	}
	if cfg.Network != nil {
		w.chainID = cfg.Network.ChainID
	}
	return w
}

// SubmitVote sends castVote(id, support) and returns the transaction hash
func (w *WriterAdapter) SubmitVote(ctx context.Context, id *big.Int, support models.VoteSupport) (common.Hash, error) {
	return w.transact(ctx, "castVote", w.governor.PackCastVote(id, uint8(support)))
}

// Propose sends propose(targets, values, calldatas, description)
func (w *WriterAdapter) Propose(ctx context.Context, actions models.ProposalActions) (common.Hash, error) {
	data, err := w.governor.TryPackPropose(actions.Targets, actions.Values, actions.Calldatas, actions.Description)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to encode propose: %w", err)
	}
	return w.transact(ctx, "propose", data)
}

func (w *WriterAdapter) transact(ctx context.Context, method string, data []byte) (common.Hash, error) {
	if w.address == (common.Address{}) {
		return common.Hash{}, errMissingAddress("governor")
	}
	client, err := w.conn.Client(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	chainID := new(big.Int).SetUint64(w.chainID)
	if w.chainID == 0 {
		if chainID, err = client.ChainID(ctx); err != nil {
			return common.Hash{}, fmt.Errorf("failed to get chain ID: %w", err)
		}
	}

	opts, err := w.account.TransactOpts(ctx, chainID)
	if err != nil {
		return common.Hash{}, err
	}

	tx, err := bind.Transact(w.governor.Instance(client, w.address), opts, data)
	if err != nil {
		return common.Hash{}, err
	}
	w.log.Debug("sent transaction", "method", method, "tx", tx.Hash().Hex(), "nonce", tx.Nonce())
	return tx.Hash(), nil
}

var _ usecase.GovernorWriter = (*WriterAdapter)(nil)
