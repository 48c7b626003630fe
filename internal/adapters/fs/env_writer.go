package fs

import (
	"context"
	"path/filepath"

	cfgloader "github.com/grantdao/grantdao-cli/internal/config"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/usecase"
)

// EnvWriterAdapter writes synced addresses into the project's .env
type EnvWriterAdapter struct {
	path string
}

// NewEnvWriterAdapter creates a new EnvWriterAdapter
func NewEnvWriterAdapter(cfg *config.RuntimeConfig) *EnvWriterAdapter {
	return &EnvWriterAdapter{
		path: filepath.Join(cfg.ProjectRoot, ".env"),
	}
}

// UpsertEnv sets the given keys and returns the file written
func (w *EnvWriterAdapter) UpsertEnv(_ context.Context, values map[string]string) (string, error) {
	if err := cfgloader.UpsertEnvFile(w.path, values); err != nil {
		return "", err
	}
	return w.path, nil
}

var _ usecase.EnvWriter = (*EnvWriterAdapter)(nil)
