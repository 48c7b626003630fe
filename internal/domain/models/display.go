package models

import "math/big"

// ProposalDisplay is everything a view needs to render one proposal card
type ProposalDisplay struct {
	Proposal *Proposal `json:"proposal"`

	Title         string        `json:"title"`
	StateLabel    string        `json:"stateLabel"`
	StateCategory StateCategory `json:"stateCategory"`

	TotalVotes *big.Int `json:"totalVotes"`
	ForPct     int      `json:"forPct"`
	AgainstPct int      `json:"againstPct"`
	AbstainPct int      `json:"abstainPct"`

	HasVoted        bool `json:"hasVoted"`
	IsVotable       bool `json:"isVotable"`
	ActionsDisabled bool `json:"actionsDisabled"`
}
