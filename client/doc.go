// Package client is a Go client for the woordenlijst HTTP API.
//
// The client covers the three slot operations (upload, status, fetch)
// and the profile-based configuration used by the CLI: profiles live in
// ~/.woordenlijst/config.yaml and can be overridden by environment
// variables (WOORDENLIJST_SERVER, WOORDENLIJST_PROFILE) and flags.
//
// # Usage
//
//	cfg := client.MergeConfig(
//	    client.ConfigFromProfile(profile),
//	    client.ConfigFromEnv(),
//	)
//	c, err := client.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := c.Upload(ctx, "notes.txt")
package client
