package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fetchOutput string

var fetchCmd = &cobra.Command{
	Use:   "fetch [local-path]",
	Short: "Fetch the slot's current content",
	Long: `Fetch the slot's current text content.

Content goes to stdout by default, or to a file with -o or a positional
local path.

Examples:
  woordenlijst-cli fetch
  woordenlijst-cli fetch ./spelling.txt
  woordenlijst-cli fetch | wc -l`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "output file path")
}

func runFetch(_ *cobra.Command, args []string) error {
	localPath := ""
	if len(args) > 0 {
		localPath = args[0]
	}
	if fetchOutput != "" {
		localPath = fetchOutput
	}

	c, err := getClient()
	if err != nil {
		return err
	}

	result, err := c.Fetch(context.Background())
	if err != nil {
		formatter := getFormatter()
		_ = formatter.FormatError(os.Stderr, err)
		return err
	}

	if localPath == "" || localPath == "-" {
		formatter := getFormatter()
		return formatter.FormatFetch(os.Stdout, &result)
	}

	if err := os.WriteFile(localPath, []byte(result.Content), 0o640); err != nil {
		return fmt.Errorf("write %s: %w", localPath, err)
	}

	if !quiet && !jsonOutput {
		fmt.Printf("Fetched: %s -> %s (%d bytes)\n", result.Filename, localPath, len(result.Content))
	}
	return nil
}
