package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/farhanyp/woordenlijst"
	"github.com/farhanyp/woordenlijst/config"
)

var catCmd = &cobra.Command{
	Use:   "cat",
	Short: "Print the slot's current content",
	Long:  `Print the slot's current text content to stdout.`,
	RunE:  runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.FromContext(ctx)
	if err != nil {
		return err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	retrieval := woordenlijst.NewRetrievalService(store)
	content, err := retrieval.Fetch(ctx)
	if err != nil {
		if errors.Is(err, woordenlijst.ErrNotFound) {
			return errors.New("the slot is empty: no file has been uploaded yet")
		}
		return fmt.Errorf("fetch slot content: %w", err)
	}

	_, err = os.Stdout.Write(content.Content)
	return err
}
