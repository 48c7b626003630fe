package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/grantdao/grantdao-cli/internal/usecase"
)

// voteHistoryFile is the on-disk layout of votes.json
type voteHistoryFile struct {
	Version int                  `json:"version"`
	Votes   []*models.VoteRecord `json:"votes"`
}

// VoteHistoryStoreAdapter implements VoteHistoryStore using the file system
type VoteHistoryStoreAdapter struct {
	path string
	mu   sync.Mutex
}

// NewVoteHistoryStoreAdapter creates a new VoteHistoryStoreAdapter
func NewVoteHistoryStoreAdapter(cfg *config.RuntimeConfig) *VoteHistoryStoreAdapter {
	return &VoteHistoryStoreAdapter{
		path: filepath.Join(cfg.DataDir, "votes.json"),
	}
}

// Append adds a record to the history file, creating it if needed
func (s *VoteHistoryStoreAdapter) Append(_ context.Context, record *models.VoteRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.load()
	if err != nil {
		return err
	}
	history.Votes = append(history.Votes, record)
	return s.save(history)
}

// List returns every recorded vote in the order it was appended
func (s *VoteHistoryStoreAdapter) List(_ context.Context) ([]*models.VoteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.load()
	if err != nil {
		return nil, err
	}
	return history.Votes, nil
}

func (s *VoteHistoryStoreAdapter) load() (*voteHistoryFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &voteHistoryFile{Version: 1}, nil
		}
		return nil, fmt.Errorf("failed to read vote history: %w", err)
	}

	var history voteHistoryFile
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to parse vote history %s: %w", s.path, err)
	}
	return &history, nil
}

func (s *VoteHistoryStoreAdapter) save(history *voteHistoryFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal vote history: %w", err)
	}

	// Write via a temp file so a crash never leaves a truncated history
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write vote history: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace vote history: %w", err)
	}
	return nil
}

// Ensure VoteHistoryStoreAdapter implements VoteHistoryStore
var _ usecase.VoteHistoryStore = (*VoteHistoryStoreAdapter)(nil)
