package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/code-payments/splmint/pkg/explorer"
	"github.com/code-payments/splmint/pkg/minter"
	"github.com/code-payments/splmint/pkg/units"
)

var mintOpts struct {
	mint     string
	owner    string
	amount   uint64
	decimals uint8
}

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint units of an existing token into an associated token account",
	Long: "Mints additional units of the token into the owner's associated token\n" +
		"account. The account is created first when it does not exist yet. The\n" +
		"payer must be the mint authority.",
	RunE: runMint,
}

func init() {
	mintCmd.Flags().StringVar(&mintOpts.mint, "mint", "", "mint address (required)")
	mintCmd.Flags().StringVar(&mintOpts.owner, "owner", "", "receiving wallet address (defaults to the payer)")
	mintCmd.Flags().Uint64Var(&mintOpts.amount, "amount", 0, "amount in whole tokens (required)")
	mintCmd.Flags().Uint8Var(&mintOpts.decimals, "decimals", 9, "mint decimals, used to scale the amount")

	_ = mintCmd.MarkFlagRequired("mint")
	_ = mintCmd.MarkFlagRequired("amount")

	rootCmd.AddCommand(mintCmd)
}

func runMint(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	payer, err := loadPayer(cfg)
	if err != nil {
		return err
	}

	amount, err := units.ToBase(mintOpts.amount, mintOpts.decimals)
	if err != nil {
		return err
	}

	mint, err := parseAddress(mintOpts.mint)
	if err != nil {
		return err
	}

	params := minter.MintUnitsParams{
		Mint:   mint,
		Amount: amount,
	}
	if mintOpts.owner != "" {
		if params.Owner, err = parseAddress(mintOpts.owner); err != nil {
			return err
		}
	}

	res, err := minter.New(cfg.RpcEndpoint, payer).MintUnits(ctx, params)
	if err != nil {
		return err
	}

	cluster := explorer.FromEndpoint(cfg.RpcEndpoint)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Token account: %s", res.TokenAccount.ToBase58())
	if res.CreatedTokenAccount {
		fmt.Fprint(out, " (created)")
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "\n%s\n", explorer.AddressUrl(res.TokenAccount.ToBase58(), cluster))
	fmt.Fprintf(out, "%s\n", explorer.TransactionUrl(res.Signature, cluster))

	return nil
}
