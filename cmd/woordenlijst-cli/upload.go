package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a text file into the slot",
	Long: `Upload a local .txt file to the server, replacing whatever the
slot currently holds.

The slot's name on the server is fixed; the local file's name only
feeds validation.

Examples:
  woordenlijst-cli upload notes.txt
  woordenlijst-cli --json upload notes.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func runUpload(_ *cobra.Command, args []string) error {
	c, err := getClient()
	if err != nil {
		return err
	}

	result, err := c.Upload(context.Background(), args[0])
	if err != nil {
		formatter := getFormatter()
		_ = formatter.FormatError(os.Stderr, err)
		return err
	}

	formatter := getFormatter()
	return formatter.FormatUpload(os.Stdout, &result)
}
