package config

// DAOConfig represents grantdao.toml.
//
//	[settings]
//	default_network = "anvil"
//
//	[networks.anvil]
//	chain_id = 31337
//	rpc_url  = "http://localhost:8545"
//
//	[networks.anvil.contracts]
//	governor = "${GOVERNOR}"
//
//	[account]
//	private_key = "${PRIVATE_KEY}"
type DAOConfig struct {
	Settings SettingsConfig           `toml:"settings"`
	Networks map[string]NetworkConfig `toml:"networks"`
	Account  AccountConfig            `toml:"account"`
}

// SettingsConfig holds client-wide tuning
type SettingsConfig struct {
	DefaultNetwork      string `toml:"default_network,omitempty"`
	ReadConcurrency     int    `toml:"read_concurrency,omitempty"`
	PollInterval        string `toml:"poll_interval,omitempty"`
	ConfirmationTimeout string `toml:"confirmation_timeout,omitempty"`
	RefreshInterval     string `toml:"refresh_interval,omitempty"`
}

// NetworkConfig is one [networks.<name>] section
type NetworkConfig struct {
	ChainID   uint64          `toml:"chain_id"`
	RPCURL    string          `toml:"rpc_url"`
	Contracts ContractsConfig `toml:"contracts"`
}

// ContractsConfig holds raw (possibly ${VAR}) contract addresses
type ContractsConfig struct {
	GrantToken string `toml:"grant_token,omitempty"`
	Governor   string `toml:"governor,omitempty"`
	Treasury   string `toml:"treasury,omitempty"`
	Timelock   string `toml:"timelock,omitempty"`
}

// AccountConfig identifies the signing key. An empty key leaves the client read-only.
type AccountConfig struct {
	PrivateKey string `toml:"private_key,omitempty"` //nolint:gosec // holds env var reference, not a literal secret
}
