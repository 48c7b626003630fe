package bindings

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
)

// GrantGovernorMetaData contains the subset of the GrantGovernor ABI the client calls.
var GrantGovernorMetaData = bind.MetaData{
	ABI: `[
	{"type":"function","name":"proposalCount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256","internalType":"uint256"}]},
	{"type":"function","name":"proposals","stateMutability":"view","inputs":[{"name":"proposalId","type":"uint256","internalType":"uint256"}],"outputs":[
		{"name":"proposer","type":"address","internalType":"address"},
		{"name":"targets","type":"address[]","internalType":"address[]"},
		{"name":"values","type":"uint256[]","internalType":"uint256[]"},
		{"name":"calldatas","type":"bytes[]","internalType":"bytes[]"},
		{"name":"description","type":"string","internalType":"string"},
		{"name":"startBlock","type":"uint256","internalType":"uint256"},
		{"name":"endBlock","type":"uint256","internalType":"uint256"}]},
	{"type":"function","name":"state","stateMutability":"view","inputs":[{"name":"proposalId","type":"uint256","internalType":"uint256"}],"outputs":[{"name":"","type":"uint8","internalType":"enum IGovernor.ProposalState"}]},
	{"type":"function","name":"proposalVotes","stateMutability":"view","inputs":[{"name":"proposalId","type":"uint256","internalType":"uint256"}],"outputs":[
		{"name":"forVotes","type":"uint256","internalType":"uint256"},
		{"name":"againstVotes","type":"uint256","internalType":"uint256"},
		{"name":"abstainVotes","type":"uint256","internalType":"uint256"}]},
	{"type":"function","name":"hasVoted","stateMutability":"view","inputs":[{"name":"proposalId","type":"uint256","internalType":"uint256"},{"name":"account","type":"address","internalType":"address"}],"outputs":[{"name":"","type":"bool","internalType":"bool"}]},
	{"type":"function","name":"castVote","stateMutability":"nonpayable","inputs":[{"name":"proposalId","type":"uint256","internalType":"uint256"},{"name":"support","type":"uint8","internalType":"uint8"}],"outputs":[{"name":"","type":"uint256","internalType":"uint256"}]},
	{"type":"function","name":"propose","stateMutability":"nonpayable","inputs":[
		{"name":"targets","type":"address[]","internalType":"address[]"},
		{"name":"values","type":"uint256[]","internalType":"uint256[]"},
		{"name":"calldatas","type":"bytes[]","internalType":"bytes[]"},
		{"name":"description","type":"string","internalType":"string"}],"outputs":[{"name":"","type":"uint256","internalType":"uint256"}]}
]`,
	ID: "GrantGovernor",
}

// GrantGovernor is a Go binding around the GrantGovernor contract.
type GrantGovernor struct {
	abi abi.ABI
}

// NewGrantGovernor creates a new instance of GrantGovernor.
func NewGrantGovernor() *GrantGovernor {
	parsed, err := GrantGovernorMetaData.ParseABI()
	if err != nil {
		panic(errors.New("invalid ABI: " + err.Error()))
	}
	return &GrantGovernor{abi: *parsed}
}

// Instance creates a wrapper for a deployed contract instance at the given address.
// Use this to create the instance object passed to abigen v2 library functions Call, Transact, etc.
func (c *GrantGovernor) Instance(backend bind.ContractBackend, addr common.Address) *bind.BoundContract {
	return bind.NewBoundContract(addr, c.abi, backend, backend, backend)
}

// PackProposalCount packs a call to proposalCount().
//
// Solidity: function proposalCount() view returns(uint256)
func (g *GrantGovernor) PackProposalCount() []byte {
	enc, err := g.abi.Pack("proposalCount")
	if err != nil {
		panic(err)
	}
	return enc
}

// UnpackProposalCount unpacks the result of proposalCount().
func (g *GrantGovernor) UnpackProposalCount(data []byte) (*big.Int, error) {
	out, err := g.abi.Unpack("proposalCount", data)
	if err != nil {
		return new(big.Int), err
	}
	out0 := abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	return out0, nil
}

// ProposalsOutput serves as a container for the return parameters of proposals(uint256).
type ProposalsOutput struct {
	Proposer    common.Address
	Targets     []common.Address
	Values      []*big.Int
	Calldatas   [][]byte
	Description string
	StartBlock  *big.Int
	EndBlock    *big.Int
}

// PackProposals packs a call to proposals(proposalId). This method will
// panic if any invalid/nil inputs are passed.
//
// Solidity: function proposals(uint256 proposalId) view returns(address proposer, address[] targets, uint256[] values, bytes[] calldatas, string description, uint256 startBlock, uint256 endBlock)
func (g *GrantGovernor) PackProposals(proposalId *big.Int) []byte {
	enc, err := g.abi.Pack("proposals", proposalId)
	if err != nil {
		panic(err)
	}
	return enc
}

// UnpackProposals unpacks the result of proposals(proposalId).
func (g *GrantGovernor) UnpackProposals(data []byte) (ProposalsOutput, error) {
	out, err := g.abi.Unpack("proposals", data)
	outstruct := new(ProposalsOutput)
	if err != nil {
		return *outstruct, err
	}
	outstruct.Proposer = *abi.ConvertType(out[0], new(common.Address)).(*common.Address)
	outstruct.Targets = *abi.ConvertType(out[1], new([]common.Address)).(*[]common.Address)
	outstruct.Values = *abi.ConvertType(out[2], new([]*big.Int)).(*[]*big.Int)
	outstruct.Calldatas = *abi.ConvertType(out[3], new([][]byte)).(*[][]byte)
	outstruct.Description = *abi.ConvertType(out[4], new(string)).(*string)
	outstruct.StartBlock = abi.ConvertType(out[5], new(big.Int)).(*big.Int)
	outstruct.EndBlock = abi.ConvertType(out[6], new(big.Int)).(*big.Int)
	return *outstruct, nil
}

// PackState packs a call to state(proposalId).
//
// Solidity: function state(uint256 proposalId) view returns(uint8)
func (g *GrantGovernor) PackState(proposalId *big.Int) []byte {
	enc, err := g.abi.Pack("state", proposalId)
	if err != nil {
		panic(err)
	}
	return enc
}

// UnpackState unpacks the result of state(proposalId).
func (g *GrantGovernor) UnpackState(data []byte) (uint8, error) {
	out, err := g.abi.Unpack("state", data)
	if err != nil {
		return *new(uint8), err
	}
	out0 := *abi.ConvertType(out[0], new(uint8)).(*uint8)
	return out0, nil
}

// ProposalVotesOutput serves as a container for the return parameters of proposalVotes(uint256).
type ProposalVotesOutput struct {
	ForVotes     *big.Int
	AgainstVotes *big.Int
	AbstainVotes *big.Int
}

// PackProposalVotes packs a call to proposalVotes(proposalId).
//
// Solidity: function proposalVotes(uint256 proposalId) view returns(uint256 forVotes, uint256 againstVotes, uint256 abstainVotes)
func (g *GrantGovernor) PackProposalVotes(proposalId *big.Int) []byte {
	enc, err := g.abi.Pack("proposalVotes", proposalId)
	if err != nil {
		panic(err)
	}
	return enc
}

// UnpackProposalVotes unpacks the result of proposalVotes(proposalId).
func (g *GrantGovernor) UnpackProposalVotes(data []byte) (ProposalVotesOutput, error) {
	out, err := g.abi.Unpack("proposalVotes", data)
	outstruct := new(ProposalVotesOutput)
	if err != nil {
		return *outstruct, err
	}
	outstruct.ForVotes = abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	outstruct.AgainstVotes = abi.ConvertType(out[1], new(big.Int)).(*big.Int)
	outstruct.AbstainVotes = abi.ConvertType(out[2], new(big.Int)).(*big.Int)
	return *outstruct, nil
}

// PackHasVoted packs a call to hasVoted(proposalId, account).
//
// Solidity: function hasVoted(uint256 proposalId, address account) view returns(bool)
func (g *GrantGovernor) PackHasVoted(proposalId *big.Int, account common.Address) []byte {
	enc, err := g.abi.Pack("hasVoted", proposalId, account)
	if err != nil {
		panic(err)
	}
	return enc
}

// UnpackHasVoted unpacks the result of hasVoted(proposalId, account).
func (g *GrantGovernor) UnpackHasVoted(data []byte) (bool, error) {
	out, err := g.abi.Unpack("hasVoted", data)
	if err != nil {
		return *new(bool), err
	}
	out0 := *abi.ConvertType(out[0], new(bool)).(*bool)
	return out0, nil
}

// PackCastVote packs a call to castVote(proposalId, support).
//
// Solidity: function castVote(uint256 proposalId, uint8 support) returns(uint256)
func (g *GrantGovernor) PackCastVote(proposalId *big.Int, support uint8) []byte {
	enc, err := g.abi.Pack("castVote", proposalId, support)
	if err != nil {
		panic(err)
	}
	return enc
}

// TryPackPropose packs a call to propose(targets, values, calldatas, description),
// returning an error if any inputs are invalid/nil.
//
// Solidity: function propose(address[] targets, uint256[] values, bytes[] calldatas, string description) returns(uint256)
func (g *GrantGovernor) TryPackPropose(targets []common.Address, values []*big.Int, calldatas [][]byte, description string) ([]byte, error) {
	return g.abi.Pack("propose", targets, values, calldatas, description)
}
