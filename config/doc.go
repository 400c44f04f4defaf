// Package config provides configuration loading and validation.
//
// The package handles YAML configuration files, environment variables,
// and CLI flags with automatic merging and validation using
// go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (WOORDENLIJST_ prefix)
//  4. CLI flags
//
// # Backend Selection
//
// storage.backend chooses the slot's backing store once at startup:
// "local" manages a single file under storage.local.path, "remote"
// manages a single object in an S3-compatible bucket described by the
// storage.remote block. The slot's key (file name or folder/object
// pair) is configuration, never caller input.
//
// # Example
//
//	cfg, err := config.Load([]string{"config.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctx = config.WithContext(ctx, cfg)
package config
