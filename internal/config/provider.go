package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot = FindProjectRoot()
	}

	daoConfig, source, err := LoadDAOConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, ".grantdao"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		ConfigSource:   source,
		DAOConfig:      daoConfig,
	}

	// Settings: file values first, then viper (env/flags) when explicitly set
	settings := daoConfig.Settings
	cfg.ReadConcurrency = max(settings.ReadConcurrency, 1)
	if cfg.PollInterval, err = parseDurationSetting("poll_interval", settings.PollInterval, 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.ConfirmationTimeout, err = parseDurationSetting("confirmation_timeout", settings.ConfirmationTimeout, 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = parseDurationSetting("refresh_interval", settings.RefreshInterval, 5*time.Second); err != nil {
		return nil, err
	}
	if v.IsSet("concurrency") && v.GetInt("concurrency") > 0 {
		cfg.ReadConcurrency = v.GetInt("concurrency")
	}
	if v.IsSet("poll_interval") {
		cfg.PollInterval = v.GetDuration("poll_interval")
	}
	if v.IsSet("confirmation_timeout") {
		cfg.ConfirmationTimeout = v.GetDuration("confirmation_timeout")
	}
	if v.IsSet("refresh") {
		cfg.RefreshInterval = v.GetDuration("refresh")
	}

	// Account: GRANTDAO_PRIVATE_KEY wins over the config file reference
	cfg.PrivateKey = strings.TrimSpace(v.GetString("private_key"))
	if cfg.PrivateKey == "" {
		cfg.PrivateKey, _ = expandValue(daoConfig.Account.PrivateKey)
	}

	networkName := v.GetString("network")
	if networkName == "" {
		networkName = daoConfig.Settings.DefaultNetwork
	}
	network, contracts, err := ResolveNetwork(daoConfig, networkName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
	}
	if rpc := v.GetString("rpc_url"); rpc != "" {
		network.RPCURL = rpc
	}
	cfg.Network = network
	cfg.Contracts = contracts

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find grantdao.toml.
// Falls back to the current directory so the client works without a project file.
func FindProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, DAOFileName)); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("GRANTDAO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "10m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("json", false)
	v.SetDefault("project_root", projectRoot)

	if cmd != nil {
		bind := func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		}
		cmd.Flags().VisitAll(bind)
		cmd.InheritedFlags().VisitAll(bind)
	}

	return v
}

func parseDurationSetting(name, raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid settings.%s %q: %w", name, raw, err)
	}
	return d, nil
}
