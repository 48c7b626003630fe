package bindings

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
)

// GrantTokenMetaData contains the ERC20Votes subset of the GrantToken ABI.
var GrantTokenMetaData = bind.MetaData{
	ABI: `[
	{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string","internalType":"string"}]},
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8","internalType":"uint8"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address","internalType":"address"}],"outputs":[{"name":"","type":"uint256","internalType":"uint256"}]},
	{"type":"function","name":"getVotes","stateMutability":"view","inputs":[{"name":"account","type":"address","internalType":"address"}],"outputs":[{"name":"","type":"uint256","internalType":"uint256"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address","internalType":"address"},{"name":"value","type":"uint256","internalType":"uint256"}],"outputs":[{"name":"","type":"bool","internalType":"bool"}]}
]`,
	ID: "GrantToken",
}

// GrantToken is a Go binding around the GrantToken contract.
type GrantToken struct {
	abi abi.ABI
}

// NewGrantToken creates a new instance of GrantToken.
func NewGrantToken() *GrantToken {
	parsed, err := GrantTokenMetaData.ParseABI()
	if err != nil {
		panic(errors.New("invalid ABI: " + err.Error()))
	}
	return &GrantToken{abi: *parsed}
}

// Instance creates a wrapper for a deployed contract instance at the given address.
func (c *GrantToken) Instance(backend bind.ContractBackend, addr common.Address) *bind.BoundContract {
	return bind.NewBoundContract(addr, c.abi, backend, backend, backend)
}

// PackSymbol packs a call to symbol().
func (t *GrantToken) PackSymbol() []byte {
	enc, err := t.abi.Pack("symbol")
	if err != nil {
		panic(err)
	}
	return enc
}

// UnpackSymbol unpacks the result of symbol().
func (t *GrantToken) UnpackSymbol(data []byte) (string, error) {
	out, err := t.abi.Unpack("symbol", data)
	if err != nil {
		return *new(string), err
	}
	out0 := *abi.ConvertType(out[0], new(string)).(*string)
	return out0, nil
}

// PackDecimals packs a call to decimals().
func (t *GrantToken) PackDecimals() []byte {
	enc, err := t.abi.Pack("decimals")
	if err != nil {
		panic(err)
	}
	return enc
}

// UnpackDecimals unpacks the result of decimals().
func (t *GrantToken) UnpackDecimals(data []byte) (uint8, error) {
	out, err := t.abi.Unpack("decimals", data)
	if err != nil {
		return *new(uint8), err
	}
	out0 := *abi.ConvertType(out[0], new(uint8)).(*uint8)
	return out0, nil
}

// PackBalanceOf packs a call to balanceOf(account).
func (t *GrantToken) PackBalanceOf(account common.Address) []byte {
	enc, err := t.abi.Pack("balanceOf", account)
	if err != nil {
		panic(err)
	}
	return enc
}

// UnpackBalanceOf unpacks the result of balanceOf(account).
func (t *GrantToken) UnpackBalanceOf(data []byte) (*big.Int, error) {
	out, err := t.abi.Unpack("balanceOf", data)
	if err != nil {
		return new(big.Int), err
	}
	out0 := abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	return out0, nil
}

// PackGetVotes packs a call to getVotes(account).
func (t *GrantToken) PackGetVotes(account common.Address) []byte {
	enc, err := t.abi.Pack("getVotes", account)
	if err != nil {
		panic(err)
	}
	return enc
}

// UnpackGetVotes unpacks the result of getVotes(account).
func (t *GrantToken) UnpackGetVotes(data []byte) (*big.Int, error) {
	out, err := t.abi.Unpack("getVotes", data)
	if err != nil {
		return new(big.Int), err
	}
	out0 := abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	return out0, nil
}

// PackTransfer packs a call to transfer(to, value).
func (t *GrantToken) PackTransfer(to common.Address, value *big.Int) []byte {
	enc, err := t.abi.Pack("transfer", to, value)
	if err != nil {
		panic(err)
	}
	return enc
}
