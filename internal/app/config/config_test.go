package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := LoadSettings(home)
	require.NoError(t, err)

	assert.Equal(t, uint64(DefaultChainID), cfg.ChainID)
	assert.Equal(t, DefaultSubgraphURL, cfg.SubgraphURL)
	assert.Equal(t, "file", cfg.StoreBackend)
	assert.Equal(t, "tophat", cfg.OwnershipTarget)
	assert.Equal(t, DefaultIPFSGateways, cfg.IPFSGateways)
	assert.Equal(t, filepath.Join(home, "hatlink.db"), cfg.DBPath)
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	settings := `
chain_label: MAINNET
store_backend: sqlite
ownership_target: self
ipfs_gateways:
  - https://gateway.example.com
`
	require.NoError(t, os.WriteFile(SettingsPath(home), []byte(settings), 0o644))

	cfg, err := LoadSettings(home)
	require.NoError(t, err)

	assert.Equal(t, "MAINNET", cfg.ChainLabel)
	assert.Equal(t, "sqlite", cfg.StoreBackend)
	assert.Equal(t, "self", cfg.OwnershipTarget)
	assert.Equal(t, []string{"https://gateway.example.com"}, cfg.IPFSGateways)
	// untouched keys keep defaults
	assert.Equal(t, DefaultGuildAPIBase, cfg.GuildAPIBase)
}

func TestLoadSettingsMalformedFileFails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(SettingsPath(home), []byte("{not yaml"), 0o644))

	_, err := LoadSettings(home)
	assert.Error(t, err)
}

func TestWriteSettingsRoundTrip(t *testing.T) {
	home := t.TempDir()
	cfg := Default(home)
	cfg.ChainLabel = "GOERLI"

	require.NoError(t, WriteSettings(cfg))

	loaded, err := LoadSettings(home)
	require.NoError(t, err)
	assert.Equal(t, "GOERLI", loaded.ChainLabel)
}
