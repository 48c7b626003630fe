package governor

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/grantdao/grantdao-cli/internal/adapters/blockchain"
	"github.com/grantdao/grantdao-cli/internal/adapters/wallet"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptersRequireAddresses(t *testing.T) {
	ctx := context.Background()
	cfg := &config.RuntimeConfig{Network: &config.Network{Name: "anvil", ChainID: 31337, RPCURL: "http://127.0.0.1:1"}}
	conn := blockchain.NewConnection(cfg)
	defer conn.Close()

	reader := NewReaderAdapter(cfg, conn)
	_, err := reader.ReadProposalCount(ctx)
	assert.ErrorContains(t, err, "governor address not configured")

	token := NewTokenAdapter(cfg, conn)
	_, err = token.TokenInfo(ctx)
	assert.ErrorContains(t, err, "grant_token address not configured")

	account, err := wallet.NewAccountAdapter(cfg)
	require.NoError(t, err)
	writer := NewWriterAdapter(cfg, conn, account, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err = writer.SubmitVote(ctx, big.NewInt(1), models.SupportFor)
	assert.ErrorContains(t, err, "governor address not configured")
}
