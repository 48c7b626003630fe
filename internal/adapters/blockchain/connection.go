package blockchain

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
)

// Connection lazily dials the configured RPC endpoint and shares the client
// between adapters. Commands that never touch the chain never dial.
type Connection struct {
	rpcURL string

	mu     sync.Mutex
	client *ethclient.Client
}

// NewConnection creates a connection for the configured network
func NewConnection(cfg *config.RuntimeConfig) *Connection {
	c := &Connection{}
	if cfg.Network != nil {
		c.rpcURL = cfg.Network.RPCURL
	}
	return c
}

// Client returns the shared client, dialing on first use
func (c *Connection) Client(ctx context.Context) (*ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}
	if c.rpcURL == "" {
		return nil, fmt.Errorf("no RPC URL configured")
	}

	client, err := ethclient.DialContext(ctx, c.rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	c.client = client
	return client, nil
}

// Close releases the underlying client, if one was dialed
func (c *Connection) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
}
