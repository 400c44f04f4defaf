package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/farhanyp/woordenlijst/client"
)

var (
	version = "dev"

	cfgFile     string
	profileName string
	server      string
	jsonOutput  bool
	quiet       bool
)

var rootCmd = &cobra.Command{
	Use:     "woordenlijst-cli",
	Version: version,
	Short:   "Client for the woordenlijst slot server",
	Long: `Woordenlijst CLI - client for the woordenlijst single-slot text store.

The server maintains exactly one text artifact. Uploading replaces it,
fetch returns whatever it currently holds, and status reports whether
it holds anything at all.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.woordenlijst/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "server profile name (env: WOORDENLIJST_PROFILE)")
	rootCmd.PersistentFlags().StringVarP(&server, "server", "s", "", "server URL (default: http://localhost:8572, env: WOORDENLIJST_SERVER)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")

	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configureCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if envPath := client.ConfigPathFromEnv(); envPath != "" {
		return envPath
	}
	return client.DefaultConfigPath()
}

// buildConfig merges config from profile, env vars, and flags (flags take precedence).
func buildConfig() (*client.Config, error) {
	var configs []*client.Config

	// 1. Resolve profile from config file
	name := profileName
	if name == "" {
		name = client.ProfileFromEnv()
	}

	configPath := getConfigPath()
	if configPath != "" {
		fileCfg, err := client.LoadConfigFile(configPath)
		if err == nil {
			profile, profileErr := fileCfg.GetProfile(name)
			if profileErr == nil {
				configs = append(configs, client.ConfigFromProfile(profile))
			} else if name != "" {
				// An explicitly requested profile must exist.
				return nil, profileErr
			}
		} else if cfgFile != "" {
			// Only error if the user explicitly specified a config file.
			return nil, err
		}
	}

	// 2. Load from environment variables
	configs = append(configs, client.ConfigFromEnv())

	// 3. Load from flags
	configs = append(configs, &client.Config{Endpoint: server})

	return client.MergeConfig(configs...), nil
}

// getFormatter returns the appropriate formatter based on flags.
func getFormatter() client.Formatter {
	return client.NewFormatter(jsonOutput, quiet)
}

// getClient creates and returns a configured client.
func getClient() (*client.Client, error) {
	cfg, err := buildConfig()
	if err != nil {
		return nil, err
	}

	return client.New(cfg)
}
