package main

import (
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/farhanyp/woordenlijst"
	"github.com/farhanyp/woordenlijst/config"
)

var putCmd = &cobra.Command{
	Use:   "put <file>",
	Short: "Load a local text file into the slot",
	Long: `Load a local .txt file into the slot directly against the
configured backend, replacing whatever the slot currently holds.

The slot's key is fixed by configuration; the source file's name only
feeds validation.

Examples:
  # Replace the slot content from a local file
  woordenlijst put ./notes.txt

  # Against the remote backend
  woordenlijst put --backend remote ./notes.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runPut,
}

func init() {
	rootCmd.AddCommand(putCmd)
}

func runPut(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.FromContext(ctx)
	if err != nil {
		return err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	sourcePath := args[0]
	payload, err := os.ReadFile(sourcePath) //#nosec G304 -- sourcePath is user-provided input
	if err != nil {
		return fmt.Errorf("read %s: %w", sourcePath, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(sourcePath))

	uploads := woordenlijst.NewUploadService(store)
	result, err := uploads.Upload(ctx, payload, contentType, filepath.Base(sourcePath))
	if err != nil {
		return fmt.Errorf("put %s: %w", sourcePath, err)
	}

	slog.Info("slot updated",
		"key", result.Metadata.Key,
		"size_bytes", result.Metadata.SizeBytes,
		"replaced", result.Replaced,
	)
	return nil
}
