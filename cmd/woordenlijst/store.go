package main

import (
	"context"
	"fmt"

	"github.com/farhanyp/woordenlijst"
	"github.com/farhanyp/woordenlijst/config"
	"github.com/farhanyp/woordenlijst/filesystem"
	"github.com/farhanyp/woordenlijst/objectstore"
)

// buildStore constructs the SlotStore selected by configuration.
// Backend choice happens once here; the services never type-switch.
func buildStore(ctx context.Context, cfg *config.Config) (woordenlijst.SlotStore, error) {
	backend, err := cfg.Backend()
	if err != nil {
		return nil, fmt.Errorf("parse storage backend: %w", err)
	}

	switch backend {
	case woordenlijst.BackendLocal:
		store, err := filesystem.NewSlotStore(cfg.Storage.Local.Path, cfg.Storage.Local.FileName)
		if err != nil {
			return nil, fmt.Errorf("create local slot store: %w", err)
		}
		return store, nil

	case woordenlijst.BackendRemote:
		store, err := objectstore.New(ctx, objectstore.Config{
			Endpoint:      cfg.Storage.Remote.Endpoint,
			AccessKey:     cfg.Storage.Remote.AccessKey,
			SecretKey:     cfg.Storage.Remote.SecretKey,
			UseSSL:        cfg.Storage.Remote.UseSSL,
			Bucket:        cfg.Storage.Remote.Bucket,
			Folder:        cfg.Storage.Remote.Folder,
			ObjectName:    cfg.Storage.Remote.ObjectName,
			PublicBaseURL: cfg.Storage.Remote.PublicBaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("create remote slot store: %w", err)
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", backend)
	}
}
