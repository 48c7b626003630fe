package models

import "time"

// VoteRecord is the persisted audit entry for one vote submission
type VoteRecord struct {
	SessionID   string          `json:"sessionId"`
	ChainID     uint64          `json:"chainId"`
	Governor    string          `json:"governor"`
	ProposalID  string          `json:"proposalId"`
	Support     VoteSupport     `json:"support"`
	Voter       string          `json:"voter"`
	Phase       SubmissionPhase `json:"phase"`
	TxHash      string          `json:"txHash,omitempty"`
	BlockNumber uint64          `json:"blockNumber,omitempty"`
	Error       string          `json:"error,omitempty"`
	SubmittedAt time.Time       `json:"submittedAt"`
	ConfirmedAt *time.Time      `json:"confirmedAt,omitempty"`
}
