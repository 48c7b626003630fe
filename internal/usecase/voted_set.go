package usecase

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

type votedKey struct {
	proposal string
	voter    common.Address
}

// VotedSet remembers which (proposal, voter) pairs are known to have voted.
// Entries are only ever added: once a pair is marked it stays marked for the
// life of the set, whatever later reads report.
type VotedSet struct {
	mu    sync.RWMutex
	voted map[votedKey]struct{}
}

// NewVotedSet creates an empty VotedSet
func NewVotedSet() *VotedSet {
	return &VotedSet{voted: make(map[votedKey]struct{})}
}

// MarkVoted records that voter has voted on the proposal
func (s *VotedSet) MarkVoted(id *big.Int, voter common.Address) {
	if id == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voted[votedKey{id.String(), voter}] = struct{}{}
}

// Observe folds a hasVoted read into the set. A false result is ignored.
func (s *VotedSet) Observe(id *big.Int, voter common.Address, voted bool) {
	if voted {
		s.MarkVoted(id, voter)
	}
}

// HasVoted reports whether the pair has been marked
func (s *VotedSet) HasVoted(id *big.Int, voter common.Address) bool {
	if id == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.voted[votedKey{id.String(), voter}]
	return ok
}
