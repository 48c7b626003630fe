package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/usecase"
)

// AccountAdapter binds a private key from configuration as the signing identity.
// With no key configured the client is read-only and CurrentAccount reports false.
type AccountAdapter struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewAccountAdapter parses the configured private key, if any
func NewAccountAdapter(cfg *config.RuntimeConfig) (*AccountAdapter, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(cfg.PrivateKey), "0x")
	if raw == "" {
		return &AccountAdapter{}, nil
	}

	key, err := crypto.HexToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return &AccountAdapter{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// CurrentAccount returns the bound address
func (a *AccountAdapter) CurrentAccount() (common.Address, bool) {
	return a.address, a.key != nil
}

// TransactOpts returns signing options for chainID bound to ctx
func (a *AccountAdapter) TransactOpts(ctx context.Context, chainID *big.Int) (*bind.TransactOpts, error) {
	if a.key == nil {
		return nil, domain.ErrNotConnected
	}
	signer := types.LatestSignerForChainID(chainID)
	key := a.key
	return &bind.TransactOpts{
		From: a.address,
		Signer: func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if address != a.address {
				return nil, fmt.Errorf("not authorized to sign for %s", address.Hex())
			}
			return types.SignTx(tx, signer, key)
		},
		Context: ctx,
	}, nil
}

var _ usecase.AccountProvider = (*AccountAdapter)(nil)
