package main

import (
	"os"
	"path/filepath"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/code-payments/splmint/pkg/keypair"
	"github.com/code-payments/splmint/pkg/storage"
)

type config struct {
	LogLevel string `mapstructure:"log_level"`

	RpcEndpoint string `mapstructure:"rpc_url"`

	// KeypairPath points at a solana-keygen JSON file. PayerKey, when set,
	// takes precedence and carries the base58 secret key directly.
	KeypairPath string `mapstructure:"keypair"`
	PayerKey    string `mapstructure:"payer_key"`

	StorageBaseUrl string `mapstructure:"storage_url"`
	StorageApiKey  string `mapstructure:"storage_api_key"`
}

func init() {
	_ = viper.BindEnv("log_level", "LOG_LEVEL")
	_ = viper.BindEnv("rpc_url", "SPLMINT_RPC_URL")
	_ = viper.BindEnv("keypair", "SPLMINT_KEYPAIR")
	_ = viper.BindEnv("payer_key", "SPLMINT_PAYER_KEY")
	_ = viper.BindEnv("storage_url", "SPLMINT_STORAGE_URL")
	_ = viper.BindEnv("storage_api_key", "SPLMINT_STORAGE_API_KEY")

	viper.SetDefault("log_level", "info")
	viper.SetDefault("rpc_url", rpc.DevnetRPCEndpoint)
	viper.SetDefault("keypair", defaultKeypairPath())
	viper.SetDefault("storage_url", storage.DefaultBaseUrl)

	rootCmd.PersistentFlags().String("rpc-url", "", "RPC endpoint (defaults to devnet)")
	rootCmd.PersistentFlags().String("keypair", "", "path to the payer keypair file")
	rootCmd.PersistentFlags().String("storage-url", "", "storage gateway base URL")

	_ = viper.BindPFlag("rpc_url", rootCmd.PersistentFlags().Lookup("rpc-url"))
	_ = viper.BindPFlag("keypair", rootCmd.PersistentFlags().Lookup("keypair"))
	_ = viper.BindPFlag("storage_url", rootCmd.PersistentFlags().Lookup("storage-url"))
}

func loadConfig() (*config, error) {
	var cfg config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "error unmarshalling config")
	}
	return &cfg, nil
}

// defaultKeypairPath mirrors the solana CLI's default keypair location.
func defaultKeypairPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "id.json"
	}
	return filepath.Join(home, ".config", "solana", "id.json")
}

// parseAddress decodes a base58 account address, rejecting values that are
// not well-formed 32-byte public keys before they reach a transaction.
func parseAddress(value string) (common.PublicKey, error) {
	decoded, err := base58.Decode(value)
	if err != nil {
		return common.PublicKey{}, errors.Wrapf(err, "invalid address %q", value)
	}
	if len(decoded) != common.PublicKeyLength {
		return common.PublicKey{}, errors.Errorf("invalid address %q: expected %d bytes, got %d", value, common.PublicKeyLength, len(decoded))
	}
	return common.PublicKeyFromBytes(decoded), nil
}

// loadPayer resolves the payer keypair from the environment-provided secret
// key, or the configured keypair file.
func loadPayer(cfg *config) (types.Account, error) {
	if cfg.PayerKey != "" {
		return keypair.FromBase58(cfg.PayerKey)
	}
	return keypair.Load(cfg.KeypairPath)
}
