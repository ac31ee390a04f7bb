// splmint is a command line tool for launching SPL tokens: it uploads token
// images and metadata to decentralized storage, creates the mint and its
// on-chain metadata account, and mints supply into associated token accounts.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "splmint",
	Short:        "Launch and manage SPL tokens with on-chain metadata",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)

		return nil
	},
}

func main() {
	// Optional local overrides; environment wins when both are present.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		logrus.StandardLogger().WithError(err).Error("command failed")
		os.Exit(1)
	}
}
