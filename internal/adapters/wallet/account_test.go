package wallet

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// First default Anvil account
const anvilKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestAccountAdapter(t *testing.T) {
	t.Run("bound key", func(t *testing.T) {
		a, err := NewAccountAdapter(&config.RuntimeConfig{PrivateKey: anvilKey})
		require.NoError(t, err)

		addr, ok := a.CurrentAccount()
		assert.True(t, ok)
		assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), addr)
	})

	t.Run("no key is read-only", func(t *testing.T) {
		a, err := NewAccountAdapter(&config.RuntimeConfig{})
		require.NoError(t, err)

		_, ok := a.CurrentAccount()
		assert.False(t, ok)

		_, err = a.TransactOpts(context.Background(), big.NewInt(31337))
		assert.ErrorIs(t, err, domain.ErrNotConnected)
	})

	t.Run("invalid key", func(t *testing.T) {
		_, err := NewAccountAdapter(&config.RuntimeConfig{PrivateKey: "0xnothex"})
		assert.ErrorContains(t, err, "invalid private key")
	})

	t.Run("signs for the chain", func(t *testing.T) {
		a, err := NewAccountAdapter(&config.RuntimeConfig{PrivateKey: anvilKey})
		require.NoError(t, err)

		opts, err := a.TransactOpts(context.Background(), big.NewInt(31337))
		require.NoError(t, err)

		tx := types.NewTx(&types.DynamicFeeTx{ChainID: big.NewInt(31337), Nonce: 1, Gas: 21000})
		signed, err := opts.Signer(opts.From, tx)
		require.NoError(t, err)

		sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(31337)), signed)
		require.NoError(t, err)
		assert.Equal(t, opts.From, sender)

		_, err = opts.Signer(common.HexToAddress("0x01"), tx)
		assert.Error(t, err)
	})
}
