package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/code-payments/splmint/pkg/storage"
)

var uploadOpts struct {
	file string
}

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a file to the storage gateway and print its URI",
	RunE:  runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&uploadOpts.file, "file", "", "path to the file to upload (required)")

	_ = uploadCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := storage.NewClient(cfg.StorageBaseUrl, cfg.StorageApiKey)

	var uri string
	if strings.EqualFold(filepath.Ext(uploadOpts.file), ".json") {
		raw, err := os.ReadFile(uploadOpts.file)
		if err != nil {
			return errors.Wrap(err, "error reading file")
		}
		if !json.Valid(raw) {
			return errors.New("file is not valid json")
		}

		uri, err = store.UploadJSON(ctx, json.RawMessage(raw))
		if err != nil {
			return err
		}
	} else {
		uri, err = store.UploadFile(ctx, uploadOpts.file)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), uri)

	return nil
}
