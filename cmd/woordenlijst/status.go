package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/farhanyp/woordenlijst"
	"github.com/farhanyp/woordenlijst/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether the slot is occupied",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.FromContext(ctx)
	if err != nil {
		return err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	statuses := woordenlijst.NewStatusService(store)
	status, err := statuses.Status(ctx)
	if err != nil {
		return fmt.Errorf("probe slot status: %w", err)
	}

	if !status.Exists {
		fmt.Println("slot: empty")
		return nil
	}

	meta := status.Metadata
	fmt.Printf("slot: occupied\n")
	fmt.Printf("  key:           %s\n", meta.Key)
	fmt.Printf("  location:      %s\n", meta.Location)
	fmt.Printf("  size:          %d bytes\n", meta.SizeBytes)
	fmt.Printf("  last modified: %s\n", meta.LastModified.Format("2006-01-02 15:04:05 MST"))
	return nil
}
