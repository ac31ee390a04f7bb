package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/code-payments/splmint/pkg/explorer"
	"github.com/code-payments/splmint/pkg/keypair"
	"github.com/code-payments/splmint/pkg/metadata"
	"github.com/code-payments/splmint/pkg/minter"
	"github.com/code-payments/splmint/pkg/storage"
	"github.com/code-payments/splmint/pkg/units"
)

var createOpts struct {
	name        string
	symbol      string
	description string
	image       string
	uri         string
	decimals    uint8
	supply      uint64
	mintOut     string

	generatePayer bool
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a fungible token with uploaded metadata",
	Long: "Uploads the token image and metadata document to the storage gateway,\n" +
		"then creates the mint, its metadata account and the payer's associated\n" +
		"token account, and mints the initial supply, all in one transaction.",
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createOpts.name, "name", "", "token name (required)")
	createCmd.Flags().StringVar(&createOpts.symbol, "symbol", "", "token symbol (required)")
	createCmd.Flags().StringVar(&createOpts.description, "description", "", "token description for the metadata document")
	createCmd.Flags().StringVar(&createOpts.image, "image", "", "path to the token image to upload")
	createCmd.Flags().StringVar(&createOpts.uri, "uri", "", "pre-existing metadata URI; skips the storage upload")
	createCmd.Flags().Uint8Var(&createOpts.decimals, "decimals", 9, "mint decimals")
	createCmd.Flags().Uint64Var(&createOpts.supply, "supply", 0, "initial supply in whole tokens, minted to the payer")
	createCmd.Flags().StringVar(&createOpts.mintOut, "mint-out", "", "write the generated mint keypair to this file")
	createCmd.Flags().BoolVar(&createOpts.generatePayer, "generate-payer", false, "generate the payer keypair file if it does not exist")

	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("symbol")

	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logrus.StandardLogger().WithField("command", "create")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	payer, err := loadPayer(cfg)
	if err != nil {
		if createOpts.generatePayer && cfg.PayerKey == "" {
			payer = keypair.Generate()
			if err := keypair.Save(cfg.KeypairPath, payer, false); err != nil {
				return err
			}
			log.WithField("path", cfg.KeypairPath).Info("generated payer keypair")
		} else {
			return err
		}
	}

	uri := createOpts.uri
	if uri == "" {
		store := storage.NewClient(cfg.StorageBaseUrl, cfg.StorageApiKey)

		var imageUri string
		if createOpts.image != "" {
			imageUri, err = store.UploadFile(ctx, createOpts.image)
			if err != nil {
				return errors.Wrap(err, "error uploading image")
			}
			log.WithField("uri", imageUri).Info("image uploaded")
		}

		uri, err = store.UploadJSON(ctx, metadata.TokenMetadata{
			Name:        createOpts.name,
			Symbol:      createOpts.symbol,
			Description: createOpts.description,
			Image:       imageUri,
		})
		if err != nil {
			return errors.Wrap(err, "error uploading metadata")
		}
		log.WithField("uri", uri).Info("metadata uploaded")
	}

	supply, err := units.ToBase(createOpts.supply, createOpts.decimals)
	if err != nil {
		return err
	}

	params := minter.CreateTokenParams{
		Name:          createOpts.name,
		Symbol:        createOpts.symbol,
		Uri:           uri,
		Decimals:      createOpts.decimals,
		InitialSupply: supply,
	}
	if createOpts.mintOut != "" {
		mint := keypair.Generate()
		if err := keypair.Save(createOpts.mintOut, mint, false); err != nil {
			return err
		}
		params.MintKeypair = &mint
	}

	res, err := minter.New(cfg.RpcEndpoint, payer).CreateToken(ctx, params)
	if err != nil {
		return err
	}

	cluster := explorer.FromEndpoint(cfg.RpcEndpoint)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Mint:          %s\n", res.Mint.ToBase58())
	fmt.Fprintf(out, "Token account: %s\n", res.TokenAccount.ToBase58())
	fmt.Fprintf(out, "Metadata:      %s\n", res.MetadataAccount.ToBase58())
	fmt.Fprintf(out, "Metadata URI:  %s\n", uri)
	if createOpts.mintOut != "" {
		fmt.Fprintf(out, "Mint keypair:  %s\n", createOpts.mintOut)
	}
	fmt.Fprintf(out, "\n%s\n", explorer.AddressUrl(res.Mint.ToBase58(), cluster))
	fmt.Fprintf(out, "%s\n", explorer.TransactionUrl(res.Signature, cluster))

	return nil
}
