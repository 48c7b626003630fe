package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
)

// WaitForConfirmation polls watcher every interval until the transaction is
// mined (confirmed or reverted), timeout elapses, or ctx is done.
// Polling errors are logged and polling continues.
func WaitForConfirmation(
	ctx context.Context,
	watcher TransactionWatcher,
	hash common.Hash,
	interval, timeout time.Duration,
	log *slog.Logger,
) (models.Confirmation, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		conf, err := watcher.CheckConfirmation(ctx, hash)
		switch {
		case err != nil:
			log.Warn("failed to check transaction", "tx", hash.Hex(), "error", err)
		case conf.Confirmed || conf.Reverted:
			return conf, nil
		}

		select {
		case <-ctx.Done():
			return models.Confirmation{}, ctx.Err()
		case <-deadline.C:
			return models.Confirmation{}, fmt.Errorf("%w: %s after %s", domain.ErrConfirmationTimeout, hash.Hex(), timeout)
		case <-ticker.C:
		}
	}
}
