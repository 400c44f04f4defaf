package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/farhanyp/woordenlijst/config"
)

var version = "dev"

var configFiles []string

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "woordenlijst",
	Short:   "Single-slot text store server",
	Long: `Woordenlijst maintains one named text artifact that can be
uploaded, replaced, and retrieved over a REST API, backed by either a
local filesystem directory or a remote object storage service.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env before viper reads the environment.
		_ = godotenv.Load()

		cfg, err := config.Load(configFiles, cmd.Flags())
		if err != nil {
			return err
		}

		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		setupLogging(cfg.Log.Level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&configFiles, "config", nil, "config file path(s) (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("backend", "", "storage backend: local, remote (default: local, env: WOORDENLIJST_STORAGE_BACKEND)")
	rootCmd.PersistentFlags().String("storage-path", "", "local storage directory (default: ./uploads, env: WOORDENLIJST_STORAGE_LOCAL_PATH)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
