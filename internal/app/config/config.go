package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default endpoints and constants for the Sepolia deployment
const (
	DefaultChainID      = 11155111
	DefaultChainLabel   = "SEPOLIA"
	DefaultSubgraphURL  = "https://api.studio.thegraph.com/query/55784/hats-v1-sepolia/version/latest"
	DefaultGuildAPIBase = "https://api.guild.xyz"
	DefaultRPCURL       = "https://rpc.sepolia.org"
	DefaultPinnerURL    = "https://hatlink.app/api"

	// Hats protocol ERC1155 contract, shared across deployments
	DefaultTokenAddress = "0x3bc1A0Ad72417f2d411118085256fC53CBdDd137"

	DefaultPrivateKeyEnv = "HATLINK_PRIVATE_KEY"
)

// DefaultIPFSGateways is the ordered public gateway list tried when
// rewriting content-addressed URIs
var DefaultIPFSGateways = []string{
	"https://ipfs.io",
	"https://w3s.link",
	"https://cloudflare-ipfs.com",
	"https://dweb.link",
	"https://flk-ipfs.xyz",
}

// AppConfig holds the full application configuration.
// Priority: settings.yaml > environment > defaults.
type AppConfig struct {
	Home string `yaml:"-"`

	ChainID      uint64 `yaml:"chain_id"`
	ChainLabel   string `yaml:"chain_label"`
	SubgraphURL  string `yaml:"subgraph_url"`
	GuildAPIBase string `yaml:"guild_api_base"`
	RPCURL       string `yaml:"rpc_url"`
	PinnerURL    string `yaml:"pinner_url"`
	TokenAddress string `yaml:"token_address"`

	IPFSGateways []string `yaml:"ipfs_gateways"`

	// Which entity's wearer list gates the hat search step: tophat or self
	OwnershipTarget string `yaml:"ownership_target"`

	// Snapshot store backend: file or sqlite
	StoreBackend string `yaml:"store_backend"`
	DBPath       string `yaml:"db_path"`

	// Metadata document archive: none, local, s3 or mock
	ArchiveBackend string `yaml:"archive_backend"`
	ArchiveDir     string `yaml:"archive_dir"`
	S3Bucket       string `yaml:"s3_bucket"`
	S3Prefix       string `yaml:"s3_prefix"`
	S3Region       string `yaml:"s3_region"`

	// Environment variable holding the signing key (hex)
	PrivateKeyEnv string `yaml:"private_key_env"`
}

// Default returns the built-in configuration rooted at home
func Default(home string) AppConfig {
	return AppConfig{
		Home:            home,
		ChainID:         DefaultChainID,
		ChainLabel:      DefaultChainLabel,
		SubgraphURL:     DefaultSubgraphURL,
		GuildAPIBase:    DefaultGuildAPIBase,
		RPCURL:          DefaultRPCURL,
		PinnerURL:       DefaultPinnerURL,
		TokenAddress:    DefaultTokenAddress,
		IPFSGateways:    append([]string(nil), DefaultIPFSGateways...),
		OwnershipTarget: "tophat",
		StoreBackend:    "file",
		DBPath:          filepath.Join(home, "hatlink.db"),
		ArchiveBackend:  "none",
		ArchiveDir:      filepath.Join(home, "archive"),
		PrivateKeyEnv:   DefaultPrivateKeyEnv,
	}
}

// SettingsPath returns the settings file location under home
func SettingsPath(home string) string {
	return filepath.Join(home, "settings.yaml")
}

// LoadSettings loads configuration from <home>/settings.yaml over the
// defaults. A missing settings file is not an error; a malformed one is.
func LoadSettings(home string) (AppConfig, error) {
	cfg := Default(home)

	b, err := os.ReadFile(SettingsPath(home))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse settings: %w", err)
	}
	cfg.Home = home
	if len(cfg.IPFSGateways) == 0 {
		cfg.IPFSGateways = append([]string(nil), DefaultIPFSGateways...)
	}
	return cfg, nil
}

// WriteSettings writes the configuration to <home>/settings.yaml
func WriteSettings(cfg AppConfig) error {
	if err := os.MkdirAll(cfg.Home, 0o755); err != nil {
		return fmt.Errorf("create home: %w", err)
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(SettingsPath(cfg.Home), b, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
