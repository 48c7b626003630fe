package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// GrantKind selects how a grant is paid out
type GrantKind string

const (
	GrantKindETH   GrantKind = "eth"
	GrantKindERC20 GrantKind = "erc20"
)

// Description prefixes mark the grant type in the proposal title
const (
	ETHGrantPrefix   = "# ETH Grant\n\n"
	ERC20GrantPrefix = "# ERC20 Grant\n\n"
)

// ProposalActions is the calldata bundle submitted to propose()
type ProposalActions struct {
	Targets     []common.Address `json:"targets"`
	Values      []*big.Int       `json:"values"`
	Calldatas   [][]byte         `json:"calldatas"`
	Description string           `json:"description"`
}
