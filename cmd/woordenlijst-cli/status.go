package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether the slot is occupied",
	Long: `Probe the server for slot occupancy.

Reports metadata (name, size, last modified) without downloading the
content itself.`,
	RunE: runStatus,
}

func runStatus(_ *cobra.Command, args []string) error {
	c, err := getClient()
	if err != nil {
		return err
	}

	result, err := c.Status(context.Background())
	if err != nil {
		formatter := getFormatter()
		_ = formatter.FormatError(os.Stderr, err)
		return err
	}

	formatter := getFormatter()
	return formatter.FormatStatus(os.Stdout, &result)
}
