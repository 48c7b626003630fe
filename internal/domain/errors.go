package domain

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNetworkMismatch is returned when the node reports a different chain than configured
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrNotConnected is returned when an action needs a bound account and none is configured
	ErrNotConnected = errors.New("wallet not connected")

	// ErrProposalCountUnavailable is returned when the governor's proposal count can't be read
	ErrProposalCountUnavailable = errors.New("failed to load proposals")

	// ErrInvalidProposalCount is returned when the reported count can't be enumerated
	ErrInvalidProposalCount = errors.New("invalid proposal count")

	// ErrInvalidSupport is returned for a vote choice other than against, for or abstain
	ErrInvalidSupport = errors.New("invalid vote support")

	// ErrProposalNotActive is returned when voting on a proposal that isn't open for votes
	ErrProposalNotActive = errors.New("proposal is not active")

	// ErrSubmissionInFlight is returned when a vote is cast while another is still outstanding
	ErrSubmissionInFlight = errors.New("another vote is still being submitted")

	// ErrSubmissionRejected is returned when the node or signer refuses a transaction
	ErrSubmissionRejected = errors.New("transaction rejected")

	// ErrTransactionReverted is returned when a mined transaction has a failed status
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrConfirmationTimeout is returned when a transaction isn't mined within the configured bound
	ErrConfirmationTimeout = errors.New("timed out waiting for confirmation")

	// ErrInvalidGrant is returned when grant proposal parameters don't validate
	ErrInvalidGrant = errors.New("invalid grant")
)

// ProposalReadError describes a failed read for a single proposal id.
type ProposalReadError struct {
	ProposalID *big.Int
	Op         string
	Err        error
}

func (e *ProposalReadError) Error() string {
	return fmt.Sprintf("proposal %s: %s: %v", e.ProposalID, e.Op, e.Err)
}

func (e *ProposalReadError) Unwrap() error {
	return e.Err
}
