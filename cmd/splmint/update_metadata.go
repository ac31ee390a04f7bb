package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/code-payments/splmint/pkg/explorer"
	"github.com/code-payments/splmint/pkg/minter"
	"github.com/code-payments/splmint/pkg/pointer"
)

var updateMetadataOpts struct {
	mint   string
	name   string
	symbol string
	uri    string
}

var updateMetadataCmd = &cobra.Command{
	Use:   "update-metadata",
	Short: "Update a token's on-chain metadata",
	Long: "Updates the mint's metadata account, keeping any field whose flag is\n" +
		"not provided. When the mint has no metadata account yet, one is created,\n" +
		"in which case name, symbol and uri are all required. The payer must be\n" +
		"the update authority.",
	RunE: runUpdateMetadata,
}

func init() {
	updateMetadataCmd.Flags().StringVar(&updateMetadataOpts.mint, "mint", "", "mint address (required)")
	updateMetadataCmd.Flags().StringVar(&updateMetadataOpts.name, "name", "", "new token name")
	updateMetadataCmd.Flags().StringVar(&updateMetadataOpts.symbol, "symbol", "", "new token symbol")
	updateMetadataCmd.Flags().StringVar(&updateMetadataOpts.uri, "uri", "", "new metadata URI")

	_ = updateMetadataCmd.MarkFlagRequired("mint")

	rootCmd.AddCommand(updateMetadataCmd)
}

func runUpdateMetadata(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	payer, err := loadPayer(cfg)
	if err != nil {
		return err
	}

	mint, err := parseAddress(updateMetadataOpts.mint)
	if err != nil {
		return err
	}

	res, err := minter.New(cfg.RpcEndpoint, payer).UpdateMetadata(ctx, minter.UpdateMetadataParams{
		Mint:   mint,
		Name:   pointer.StringIfValid(cmd.Flags().Changed("name"), updateMetadataOpts.name),
		Symbol: pointer.StringIfValid(cmd.Flags().Changed("symbol"), updateMetadataOpts.symbol),
		Uri:    pointer.StringIfValid(cmd.Flags().Changed("uri"), updateMetadataOpts.uri),
	})
	if err != nil {
		return err
	}

	cluster := explorer.FromEndpoint(cfg.RpcEndpoint)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Metadata: %s", res.MetadataAccount.ToBase58())
	if res.Created {
		fmt.Fprint(out, " (created)")
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "\n%s\n", explorer.TransactionUrl(res.Signature, cluster))

	return nil
}
