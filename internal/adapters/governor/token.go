package governor

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/grantdao/grantdao-cli/internal/adapters/abi/bindings"
	"github.com/grantdao/grantdao-cli/internal/adapters/blockchain"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/grantdao/grantdao-cli/internal/usecase"
)

// TokenAdapter implements TokenReader against the GrantToken (ERC20Votes)
type TokenAdapter struct {
	conn    *blockchain.Connection
	address common.Address
	token   *bindings.GrantToken
}

// NewTokenAdapter creates a new token reader adapter
func NewTokenAdapter(cfg *config.RuntimeConfig, conn *blockchain.Connection) *TokenAdapter {
	return &TokenAdapter{
		conn:    conn,
		address: cfg.Contracts.GrantToken,
		token:   bindings.NewGrantToken(),
	}
}

func (t *TokenAdapter) instance(ctx context.Context) (*bind.BoundContract, error) {
	if t.address == (common.Address{}) {
		return nil, errMissingAddress("grant_token")
	}
	client, err := t.conn.Client(ctx)
	if err != nil {
		return nil, err
	}
	return t.token.Instance(client, t.address), nil
}

// TokenInfo reads symbol() and decimals()
func (t *TokenAdapter) TokenInfo(ctx context.Context) (models.TokenInfo, error) {
	c, err := t.instance(ctx)
	if err != nil {
		return models.TokenInfo{}, err
	}
	opts := &bind.CallOpts{Context: ctx}
	symbol, err := bind.Call(c, opts, t.token.PackSymbol(), t.token.UnpackSymbol)
	if err != nil {
		return models.TokenInfo{}, err
	}
	decimals, err := bind.Call(c, opts, t.token.PackDecimals(), t.token.UnpackDecimals)
	if err != nil {
		return models.TokenInfo{}, err
	}
	return models.TokenInfo{Address: t.address, Symbol: symbol, Decimals: decimals}, nil
}

// BalanceOf reads balanceOf(account)
func (t *TokenAdapter) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	c, err := t.instance(ctx)
	if err != nil {
		return nil, err
	}
	return bind.Call(c, &bind.CallOpts{Context: ctx}, t.token.PackBalanceOf(account), t.token.UnpackBalanceOf)
}

// GetVotes reads getVotes(account)
func (t *TokenAdapter) GetVotes(ctx context.Context, account common.Address) (*big.Int, error) {
	c, err := t.instance(ctx)
	if err != nil {
		return nil, err
	}
	return bind.Call(c, &bind.CallOpts{Context: ctx}, t.token.PackGetVotes(account), t.token.UnpackGetVotes)
}

var _ usecase.TokenReader = (*TokenAdapter)(nil)
