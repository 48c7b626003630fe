package bindings

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnpackProposals(t *testing.T) {
	g := NewGrantGovernor()
	proposer := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	recipient := common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")

	data, err := g.abi.Methods["proposals"].Outputs.Pack(
		proposer,
		[]common.Address{recipient},
		[]*big.Int{big.NewInt(1e18)},
		[][]byte{{}},
		"# ETH Grant\n\nAudit",
		big.NewInt(100),
		big.NewInt(150),
	)
	require.NoError(t, err)

	out, err := g.UnpackProposals(data)
	require.NoError(t, err)
	assert.Equal(t, proposer, out.Proposer)
	assert.Equal(t, []common.Address{recipient}, out.Targets)
	assert.Equal(t, "1000000000000000000", out.Values[0].String())
	assert.Equal(t, "# ETH Grant\n\nAudit", out.Description)
	assert.Equal(t, int64(150), out.EndBlock.Int64())
}

func TestUnpackProposalVotesOrder(t *testing.T) {
	g := NewGrantGovernor()
	data, err := g.abi.Methods["proposalVotes"].Outputs.Pack(big.NewInt(60), big.NewInt(30), big.NewInt(10))
	require.NoError(t, err)

	out, err := g.UnpackProposalVotes(data)
	require.NoError(t, err)
	assert.Equal(t, int64(60), out.ForVotes.Int64())
	assert.Equal(t, int64(30), out.AgainstVotes.Int64())
	assert.Equal(t, int64(10), out.AbstainVotes.Int64())
}

func TestPackCastVoteSelector(t *testing.T) {
	g := NewGrantGovernor()
	data := g.PackCastVote(big.NewInt(5), 1)
	assert.Equal(t, g.abi.Methods["castVote"].ID, data[:4])
	assert.Len(t, data, 4+32+32)
}

func TestPackTransferMatchesSelector(t *testing.T) {
	tok := NewGrantToken()
	data := tok.PackTransfer(common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"), big.NewInt(1))
	assert.Equal(t, []byte{0xa9, 0x05, 0x9c, 0xbb}, data[:4])
}
