package blockchain

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func TestConfirmationFromReceipt(t *testing.T) {
	ok := confirmationFromReceipt(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(12)})
	assert.Equal(t, models.Confirmation{Confirmed: true, BlockNumber: 12}, ok)

	reverted := confirmationFromReceipt(&types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(13)})
	assert.Equal(t, models.Confirmation{Reverted: true, BlockNumber: 13}, reverted)

	noBlock := confirmationFromReceipt(&types.Receipt{Status: types.ReceiptStatusSuccessful})
	assert.Equal(t, uint64(0), noBlock.BlockNumber)
}

func TestConnectionWithoutNetwork(t *testing.T) {
	conn := NewConnection(&config.RuntimeConfig{})
	_, err := conn.Client(context.Background())
	assert.ErrorContains(t, err, "no RPC URL configured")

	checker := NewCheckerAdapter(conn)
	_, err = checker.ChainID(context.Background())
	assert.Error(t, err)
	conn.Close()
}
