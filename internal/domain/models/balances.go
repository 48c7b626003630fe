package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TokenInfo describes the governance token
type TokenInfo struct {
	Address  common.Address `json:"address"`
	Symbol   string         `json:"symbol"`
	Decimals uint8          `json:"decimals"`
}

// Balances is the dashboard overview of treasury and account holdings
type Balances struct {
	Token TokenInfo `json:"token"`

	Treasury        common.Address `json:"treasury"`
	TreasuryBalance *big.Int       `json:"treasuryBalance"`

	// Account fields are nil when no account is bound
	Account        *common.Address `json:"account,omitempty"`
	AccountBalance *big.Int        `json:"accountBalance,omitempty"`
	TokenBalance   *big.Int        `json:"tokenBalance,omitempty"`
	VotingPower    *big.Int        `json:"votingPower,omitempty"`
}

// ChainStatus is the node's view of the network compared to the configuration
type ChainStatus struct {
	Network         string `json:"network"`
	RPCURL          string `json:"rpcUrl"`
	ExpectedChainID uint64 `json:"expectedChainId"`
	ChainID         uint64 `json:"chainId"`
	LatestBlock     uint64 `json:"latestBlock"`
	Mismatch        bool   `json:"mismatch"`
}
