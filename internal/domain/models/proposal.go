package models

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ProposalState is the lifecycle code reported by the governor contract
type ProposalState uint8

const (
	ProposalStatePending ProposalState = iota
	ProposalStateActive
	ProposalStateCanceled
	ProposalStateDefeated
	ProposalStateSucceeded
	ProposalStateQueued
	ProposalStateExpired
	ProposalStateExecuted
)

// StateCategory groups states for display colouring
type StateCategory string

const (
	CategoryYellow  StateCategory = "yellow"
	CategoryBlue    StateCategory = "blue"
	CategoryGray    StateCategory = "gray"
	CategoryRed     StateCategory = "red"
	CategoryGreen   StateCategory = "green"
	CategoryPurple  StateCategory = "purple"
	CategoryOrange  StateCategory = "orange"
	CategoryEmerald StateCategory = "emerald"
)

var stateLabels = [...]string{
	"Pending",
	"Active",
	"Canceled",
	"Defeated",
	"Succeeded",
	"Queued",
	"Expired",
	"Executed",
}

var stateCategories = [...]StateCategory{
	CategoryYellow,
	CategoryBlue,
	CategoryGray,
	CategoryRed,
	CategoryGreen,
	CategoryPurple,
	CategoryOrange,
	CategoryEmerald,
}

// String returns the governor's label for the state, or "Unknown" for codes outside the table
func (s ProposalState) String() string {
	if int(s) < len(stateLabels) {
		return stateLabels[s]
	}
	return "Unknown"
}

// Category returns the display category for the state
func (s ProposalState) Category() StateCategory {
	if int(s) < len(stateCategories) {
		return stateCategories[s]
	}
	return CategoryGray
}

// AcceptsVotes reports whether new votes may be cast in this state
func (s ProposalState) AcceptsVotes() bool {
	return s == ProposalStateActive
}

// ParseProposalState maps a label (case-insensitive) back to its state code
func ParseProposalState(label string) (ProposalState, bool) {
	for i, l := range stateLabels {
		if strings.EqualFold(l, label) {
			return ProposalState(i), true
		}
	}
	return 0, false
}

// Proposal is the normalized view of a governor proposal merged from the
// core tuple, the state code and the vote tallies.
type Proposal struct {
	ID          *big.Int         `json:"id"`
	Proposer    common.Address   `json:"proposer"`
	Targets     []common.Address `json:"targets"`
	Values      []*big.Int       `json:"values"`
	Calldatas   [][]byte         `json:"calldatas"`
	Description string           `json:"description"`
	StartBlock  *big.Int         `json:"startBlock"`
	EndBlock    *big.Int         `json:"endBlock"`
	State       ProposalState    `json:"state"`

	ForVotes     *big.Int `json:"forVotes"`
	AgainstVotes *big.Int `json:"againstVotes"`
	AbstainVotes *big.Int `json:"abstainVotes"`
}

// Title returns the first line of the description
func (p *Proposal) Title() string {
	title, _, _ := strings.Cut(p.Description, "\n")
	return strings.TrimSpace(title)
}

// TotalVotes returns for + against + abstain, treating missing tallies as zero
func (p *Proposal) TotalVotes() *big.Int {
	total := new(big.Int)
	for _, v := range []*big.Int{p.ForVotes, p.AgainstVotes, p.AbstainVotes} {
		if v != nil {
			total.Add(total, v)
		}
	}
	return total
}

// RequestedValue returns the native value of the first action, or zero
func (p *Proposal) RequestedValue() *big.Int {
	if len(p.Values) == 0 || p.Values[0] == nil {
		return new(big.Int)
	}
	return p.Values[0]
}

// ProposalCore is the raw tuple returned by the governor's proposals(id) getter
type ProposalCore struct {
	Proposer    common.Address
	Targets     []common.Address
	Values      []*big.Int
	Calldatas   [][]byte
	Description string
	StartBlock  *big.Int
	EndBlock    *big.Int
}

// VoteTally is the raw tuple returned by proposalVotes(id)
type VoteTally struct {
	For     *big.Int
	Against *big.Int
	Abstain *big.Int
}

// NewProposal merges the three reads for a proposal id into one record
func NewProposal(id *big.Int, core *ProposalCore, state ProposalState, tally *VoteTally) *Proposal {
	return &Proposal{
		ID:           new(big.Int).Set(id),
		Proposer:     core.Proposer,
		Targets:      core.Targets,
		Values:       core.Values,
		Calldatas:    core.Calldatas,
		Description:  core.Description,
		StartBlock:   core.StartBlock,
		EndBlock:     core.EndBlock,
		State:        state,
		ForVotes:     orZero(tally.For),
		AgainstVotes: orZero(tally.Against),
		AbstainVotes: orZero(tally.Abstain),
	}
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
