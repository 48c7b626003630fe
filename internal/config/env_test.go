package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEnvVar(t *testing.T) {
	tests := []struct {
		raw  string
		name string
		ok   bool
	}{
		{"${GOVERNOR}", "GOVERNOR", true},
		{"${_PRIVATE_KEY2}", "_PRIVATE_KEY2", true},
		{"0x68B1D87F95878fE05B998F19b66F4baba5De1aed", "", false},
		{"http://${HOST}:8545", "", false},
		{"${1BAD}", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			name, ok := DetectEnvVar(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestExpandValue(t *testing.T) {
	t.Setenv("GRANTDAO_TEST_HOST", "node.local")

	value, unset := expandValue("http://${GRANTDAO_TEST_HOST}:8545")
	assert.Equal(t, "http://node.local:8545", value)
	assert.Empty(t, unset)

	value, unset = expandValue("${GRANTDAO_TEST_DOES_NOT_EXIST}")
	assert.Empty(t, value)
	assert.Equal(t, "GRANTDAO_TEST_DOES_NOT_EXIST", unset)

	value, unset = expandValue("literal")
	assert.Equal(t, "literal", value)
	assert.Empty(t, unset)
}

func TestLoadDAOConfigReadsDotEnv(t *testing.T) {
	dir := writeProject(t, `
[networks.anvil]
chain_id = 31337
rpc_url = "http://localhost:8545"
[networks.anvil.contracts]
governor = "${GRANTDAO_TEST_ENVFILE_GOVERNOR}"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("GRANTDAO_TEST_ENVFILE_GOVERNOR=0x68B1D87F95878fE05B998F19b66F4baba5De1aed\n"), 0644))
	t.Cleanup(func() { _ = os.Unsetenv("GRANTDAO_TEST_ENVFILE_GOVERNOR") })

	cfg, source, err := LoadDAOConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, DAOFileName, source)
	assert.Equal(t, DefaultNetwork, cfg.Settings.DefaultNetwork)

	_, contracts, err := ResolveNetwork(cfg, "anvil")
	require.NoError(t, err)
	assert.Equal(t, "0x68B1D87F95878fE05B998F19b66F4baba5De1aed", contracts.Governor.Hex())
}

func TestLoadDAOConfigInvalidToml(t *testing.T) {
	dir := writeProject(t, "[networks\nbroken")

	_, _, err := LoadDAOConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse grantdao.toml")
}

func TestUpsertEnvFile(t *testing.T) {
	t.Run("rewrites existing keys and appends missing ones", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		existing := "# local deployment\nPRIVATE_KEY=0xabc\nGOVERNOR=0x0000000000000000000000000000000000000001\n\nexport TIMELOCK=old\n"
		require.NoError(t, os.WriteFile(path, []byte(existing), 0644))

		err := UpsertEnvFile(path, map[string]string{
			"GOVERNOR":    "0x68B1D87F95878fE05B998F19b66F4baba5De1aed",
			"TIMELOCK":    "0x3Aa5ebB10DC797CAC828524e59A333d0A371443c",
			"TREASURY":    "0xc6e7DF5E7b4f2A278906862b61205850344D4e7d",
			"GRANT_TOKEN": "0x959922bE3CAee4b8Cd9a407cc3ac1C251C2007B1",
		})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# local deployment\n"+
			"PRIVATE_KEY=0xabc\n"+
			"GOVERNOR=0x68B1D87F95878fE05B998F19b66F4baba5De1aed\n"+
			"\n"+
			"TIMELOCK=0x3Aa5ebB10DC797CAC828524e59A333d0A371443c\n"+
			"GRANT_TOKEN=0x959922bE3CAee4b8Cd9a407cc3ac1C251C2007B1\n"+
			"TREASURY=0xc6e7DF5E7b4f2A278906862b61205850344D4e7d\n", string(data))
	})

	t.Run("creates the file when missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")

		require.NoError(t, UpsertEnvFile(path, map[string]string{"GOVERNOR": "0x1"}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "GOVERNOR=0x1\n", string(data))
	})
}
