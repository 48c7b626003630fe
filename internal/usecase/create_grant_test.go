package usecase_test

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/grantdao/grantdao-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	recipientHex = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
	tokenHex     = "0x959922bE3CAee4b8Cd9a407cc3ac1C251C2007B1"
	zeroHex      = "0x0000000000000000000000000000000000000000"

	// 2^256, one past the largest uint256
	uint256Overflow = "115792089237316195423570985008687907853269984665640564039457584007913129639936"
)

func TestBuildGrantActions(t *testing.T) {
	t.Run("eth grant pays the recipient", func(t *testing.T) {
		actions, err := usecase.BuildGrantActions(usecase.CreateGrantParams{
			Kind:        models.GrantKindETH,
			Recipient:   recipientHex,
			Amount:      "1.5",
			Description: "  Audit funding  ",
		})
		require.NoError(t, err)

		assert.Equal(t, []common.Address{common.HexToAddress(recipientHex)}, actions.Targets)
		assert.Equal(t, "1500000000000000000", actions.Values[0].String())
		assert.Equal(t, [][]byte{{}}, actions.Calldatas)
		assert.Equal(t, "# ETH Grant\n\nAudit funding", actions.Description)
	})

	t.Run("erc20 grant calls transfer on the token", func(t *testing.T) {
		actions, err := usecase.BuildGrantActions(usecase.CreateGrantParams{
			Kind:        models.GrantKindERC20,
			Recipient:   recipientHex,
			Token:       tokenHex,
			Amount:      "250",
			Decimals:    6,
			Description: "Design bounty",
		})
		require.NoError(t, err)

		assert.Equal(t, []common.Address{common.HexToAddress(tokenHex)}, actions.Targets)
		assert.Equal(t, int64(0), actions.Values[0].Int64())
		assert.Equal(t, "# ERC20 Grant\n\nDesign bounty", actions.Description)

		calldata := actions.Calldatas[0]
		require.Len(t, calldata, 68)
		assert.Equal(t, "a9059cbb", hex.EncodeToString(calldata[:4]))
		assert.Equal(t, common.HexToAddress(recipientHex), common.BytesToAddress(calldata[4:36]))
		assert.Equal(t, "250000000", new(big.Int).SetBytes(calldata[36:]).String())
	})

	tests := []struct {
		name   string
		params usecase.CreateGrantParams
		errMsg string
	}{
		{"missing description", usecase.CreateGrantParams{Kind: models.GrantKindETH, Recipient: recipientHex, Amount: "1"}, "description is required"},
		{"bad recipient", usecase.CreateGrantParams{Kind: models.GrantKindETH, Recipient: "0x123", Amount: "1", Description: "x"}, "invalid address"},
		{"zero amount", usecase.CreateGrantParams{Kind: models.GrantKindETH, Recipient: recipientHex, Amount: "0", Description: "x"}, "greater than zero"},
		{"negative amount", usecase.CreateGrantParams{Kind: models.GrantKindETH, Recipient: recipientHex, Amount: "-2", Description: "x"}, "greater than zero"},
		{"garbage amount", usecase.CreateGrantParams{Kind: models.GrantKindETH, Recipient: recipientHex, Amount: "abc", Description: "x"}, "invalid amount"},
		{"bad token", usecase.CreateGrantParams{Kind: models.GrantKindERC20, Recipient: recipientHex, Token: "nope", Amount: "1", Description: "x"}, "token"},
		{"too many decimals", usecase.CreateGrantParams{Kind: models.GrantKindERC20, Recipient: recipientHex, Token: tokenHex, Amount: "1.001", Decimals: 2, Description: "x"}, "decimal places"},
		{"doubled sign", usecase.CreateGrantParams{Kind: models.GrantKindETH, Recipient: recipientHex, Amount: "--1", Description: "x"}, "invalid amount"},
		{"zero recipient", usecase.CreateGrantParams{Kind: models.GrantKindETH, Recipient: zeroHex, Amount: "1", Description: "x"}, "recipient is the zero address"},
		{"zero token", usecase.CreateGrantParams{Kind: models.GrantKindERC20, Recipient: recipientHex, Token: zeroHex, Amount: "5", Description: "x"}, "token is the zero address"},
		{"amount beyond uint256", usecase.CreateGrantParams{Kind: models.GrantKindERC20, Recipient: recipientHex, Token: tokenHex, Amount: uint256Overflow, Decimals: 0, Description: "x"}, "exceeds uint256"},
		{"unknown kind", usecase.CreateGrantParams{Kind: "nft", Recipient: recipientHex, Amount: "1", Description: "x"}, "unknown grant kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := usecase.BuildGrantActions(tt.params)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidGrant)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestEncodeTransfer(t *testing.T) {
	to := common.HexToAddress(recipientHex)

	t.Run("largest uint256", func(t *testing.T) {
		largest, ok := new(big.Int).SetString(uint256Overflow, 10)
		require.True(t, ok)
		largest.Sub(largest, big.NewInt(1))

		data, err := usecase.EncodeTransfer(to, largest)
		require.NoError(t, err)
		require.Len(t, data, 68)
		assert.Equal(t, "a9059cbb", hex.EncodeToString(data[:4]))
		assert.Equal(t, largest.String(), new(big.Int).SetBytes(data[36:]).String())
	})

	t.Run("overflow is rejected", func(t *testing.T) {
		data, err := usecase.EncodeTransfer(to, new(big.Int).Lsh(big.NewInt(1), 300))
		require.Error(t, err)
		assert.Nil(t, data)
	})

	t.Run("negative is rejected", func(t *testing.T) {
		_, err := usecase.EncodeTransfer(to, big.NewInt(-1))
		assert.Error(t, err)
	})
}

func TestCreateGrant(t *testing.T) {
	ctx := context.Background()
	cfg := &config.RuntimeConfig{PollInterval: time.Millisecond, ConfirmationTimeout: time.Second}
	params := usecase.CreateGrantParams{
		Kind:        models.GrantKindETH,
		Recipient:   recipientHex,
		Amount:      "2",
		Description: "Hackathon prizes",
	}

	t.Run("submits and waits for the receipt", func(t *testing.T) {
		writer := &MockGovernorWriter{}
		watcher := &MockTransactionWatcher{}
		writer.On("Propose", ctx, mock.MatchedBy(func(a models.ProposalActions) bool {
			return a.Description == "# ETH Grant\n\nHackathon prizes"
		})).Return(txHash, nil)
		watcher.On("CheckConfirmation", ctx, txHash).Return(models.Confirmation{Confirmed: true, BlockNumber: 12}, nil)

		sink := &MockProgressSink{}
		uc := usecase.NewCreateGrant(cfg, writer, watcher, connected, sink, discardLogger())
		result, err := uc.Run(ctx, params)
		require.NoError(t, err)

		assert.Equal(t, txHash, result.Outcome.TxHash)
		assert.Equal(t, uint64(12), result.Outcome.BlockNumber)
		assert.Equal(t, []string{"submitting", "confirming", "complete"}, sink.stages())
	})

	t.Run("requires an account", func(t *testing.T) {
		writer := &MockGovernorWriter{}
		uc := usecase.NewCreateGrant(cfg, writer, &MockTransactionWatcher{}, disconnected, usecase.NopProgress{}, discardLogger())

		_, err := uc.Run(ctx, params)
		assert.ErrorIs(t, err, domain.ErrNotConnected)
		writer.AssertNotCalled(t, "Propose", mock.Anything, mock.Anything)
	})

	t.Run("rejected propose", func(t *testing.T) {
		writer := &MockGovernorWriter{}
		writer.On("Propose", ctx, mock.Anything).Return(common.Hash{}, errors.New("Governor: proposer votes below proposal threshold"))
		uc := usecase.NewCreateGrant(cfg, writer, &MockTransactionWatcher{}, connected, usecase.NopProgress{}, discardLogger())

		_, err := uc.Run(ctx, params)
		assert.ErrorIs(t, err, domain.ErrSubmissionRejected)
		assert.Contains(t, err.Error(), "proposal threshold")
	})

	t.Run("reverted propose", func(t *testing.T) {
		writer := &MockGovernorWriter{}
		watcher := &MockTransactionWatcher{}
		writer.On("Propose", ctx, mock.Anything).Return(txHash, nil)
		watcher.On("CheckConfirmation", ctx, txHash).Return(models.Confirmation{Reverted: true}, nil)
		uc := usecase.NewCreateGrant(cfg, writer, watcher, connected, usecase.NopProgress{}, discardLogger())

		_, err := uc.Run(ctx, params)
		assert.ErrorIs(t, err, domain.ErrTransactionReverted)
	})
}
