package models

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// VoteSupport is the voter's choice as encoded by the governor
type VoteSupport uint8

const (
	SupportAgainst VoteSupport = 0
	SupportFor     VoteSupport = 1
	SupportAbstain VoteSupport = 2
)

func (s VoteSupport) String() string {
	switch s {
	case SupportAgainst:
		return "Against"
	case SupportFor:
		return "For"
	case SupportAbstain:
		return "Abstain"
	default:
		return fmt.Sprintf("Support(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the three governor choices
func (s VoteSupport) Valid() bool {
	return s <= SupportAbstain
}

// ParseVoteSupport accepts "for", "against", "abstain" or their numeric codes
func ParseVoteSupport(v string) (VoteSupport, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "against", "0", "no":
		return SupportAgainst, nil
	case "for", "1", "yes":
		return SupportFor, nil
	case "abstain", "2":
		return SupportAbstain, nil
	default:
		return 0, fmt.Errorf("invalid vote %q (valid: for, against, abstain)", v)
	}
}

// SubmissionPhase is the lifecycle of a single vote submission
type SubmissionPhase string

const (
	PhaseIdle       SubmissionPhase = "idle"
	PhasePending    SubmissionPhase = "pending"
	PhaseConfirming SubmissionPhase = "confirming"
	PhaseDone       SubmissionPhase = "done"
	PhaseFailed     SubmissionPhase = "failed"
)

// InFlight reports whether the phase holds the submission slot
func (p SubmissionPhase) InFlight() bool {
	return p == PhasePending || p == PhaseConfirming
}

// Terminal reports whether the phase ends a session
func (p SubmissionPhase) Terminal() bool {
	return p == PhaseDone || p == PhaseFailed
}

// SubmissionSession tracks one cast-vote action from signature to confirmation
type SubmissionSession struct {
	ID          string          `json:"id"`
	ProposalID  *big.Int        `json:"proposalId"`
	Support     VoteSupport     `json:"support"`
	Voter       common.Address  `json:"voter"`
	Phase       SubmissionPhase `json:"phase"`
	Handle      *common.Hash    `json:"handle,omitempty"`
	BlockNumber uint64          `json:"blockNumber,omitempty"`
	StartedAt   time.Time       `json:"startedAt"`
	ConfirmedAt *time.Time      `json:"confirmedAt,omitempty"`
	Err         error           `json:"-"`
}

// Clone returns a copy safe to hand out of the tracker's lock
func (s *SubmissionSession) Clone() *SubmissionSession {
	if s == nil {
		return nil
	}
	c := *s
	if s.Handle != nil {
		h := *s.Handle
		c.Handle = &h
	}
	if s.ConfirmedAt != nil {
		t := *s.ConfirmedAt
		c.ConfirmedAt = &t
	}
	return &c
}

// Confirmation is the result of polling for a submitted transaction
type Confirmation struct {
	Confirmed   bool
	Reverted    bool
	BlockNumber uint64
}

// TransactionOutcome is what a confirmed write returns to the caller
type TransactionOutcome struct {
	TxHash      common.Hash `json:"txHash"`
	BlockNumber uint64      `json:"blockNumber"`
}
