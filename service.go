package woordenlijst

import (
	"context"
	"fmt"
)

// SlotStore defines the storage contract for the single managed slot.
// Implementations back the slot with a local file or a remote object;
// the key identifying the slot is fixed at construction and never
// derived from caller input.
//
// All methods accept a context for cancellation and timeout control.
type SlotStore interface {
	// Exists reports whether a payload is currently stored at the key.
	// It never fails for an empty slot, only for backend failures.
	Exists(ctx context.Context) (bool, error)

	// Stat returns the stored payload's metadata without transferring
	// content. Returns ErrNotFound when the slot is empty.
	Stat(ctx context.Context) (SlotMetadata, error)

	// Get returns the stored payload and its metadata.
	// Returns ErrNotFound when the slot is empty and a BackendError on
	// I/O or network failure.
	Get(ctx context.Context) (SlotContent, error)

	// Put unconditionally replaces the slot's payload. Any previously
	// stored content becomes unreachable through the key once Put
	// returns, whether or not its physical storage was reclaimed.
	Put(ctx context.Context, content []byte, contentType string) (SlotMetadata, error)
}

// UploadService validates candidate payloads and replaces the slot's
// content. It holds no state between calls; occupancy is re-derived
// from the backend on every upload.
type UploadService struct {
	store SlotStore
}

func NewUploadService(store SlotStore) *UploadService {
	return &UploadService{store: store}
}

// Upload validates the payload and stores it in the slot.
//
// Validation failures return a *ValidationError before any backend
// call is made. The existence probe only drives the Replaced flag in
// the result; the store's Put replaces unconditionally either way.
// Backend failures are returned as *BackendError without retry.
//
// Concurrent uploads are not serialized: if two uploads race, the slot
// ends up holding whichever Put completes last at the backend.
func (s *UploadService) Upload(ctx context.Context, payload []byte, declaredMediaType, declaredName string) (UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return UploadResult{}, fmt.Errorf("upload: %w", err)
	}

	if err := ValidateUpload(int64(len(payload)), declaredMediaType, declaredName); err != nil {
		return UploadResult{}, fmt.Errorf("upload: %w", err)
	}

	occupied, err := s.store.Exists(ctx)
	if err != nil {
		return UploadResult{}, fmt.Errorf("upload: %w", err)
	}

	meta, err := s.store.Put(ctx, payload, TextMediaType)
	if err != nil {
		return UploadResult{}, fmt.Errorf("upload: %w", err)
	}

	return UploadResult{Replaced: occupied, Metadata: meta}, nil
}

// RetrievalService resolves the slot's current content.
type RetrievalService struct {
	store SlotStore
}

func NewRetrievalService(store SlotStore) *RetrievalService {
	return &RetrievalService{store: store}
}

// Fetch returns the slot's payload and metadata. An empty slot yields
// ErrNotFound. Every call re-reads the backend, so a fetch issued after
// a successful upload observes the new content subject to the backend's
// own read-after-write guarantees.
func (s *RetrievalService) Fetch(ctx context.Context) (SlotContent, error) {
	if err := ctx.Err(); err != nil {
		return SlotContent{}, fmt.Errorf("fetch: %w", err)
	}

	occupied, err := s.store.Exists(ctx)
	if err != nil {
		return SlotContent{}, fmt.Errorf("fetch: %w", err)
	}
	if !occupied {
		return SlotContent{}, fmt.Errorf("fetch: %w", ErrNotFound)
	}

	content, err := s.store.Get(ctx)
	if err != nil {
		return SlotContent{}, fmt.Errorf("fetch: %w", err)
	}

	return content, nil
}

// StatusService reports slot occupancy without fetching content.
type StatusService struct {
	store SlotStore
}

func NewStatusService(store SlotStore) *StatusService {
	return &StatusService{store: store}
}

// Status reports whether the slot is occupied, with metadata when it
// is. Content is never transferred.
func (s *StatusService) Status(ctx context.Context) (SlotStatus, error) {
	if err := ctx.Err(); err != nil {
		return SlotStatus{}, fmt.Errorf("status: %w", err)
	}

	occupied, err := s.store.Exists(ctx)
	if err != nil {
		return SlotStatus{}, fmt.Errorf("status: %w", err)
	}
	if !occupied {
		return SlotStatus{Exists: false}, nil
	}

	meta, err := s.store.Stat(ctx)
	if err != nil {
		return SlotStatus{}, fmt.Errorf("status: %w", err)
	}

	return SlotStatus{Exists: true, Metadata: &meta}, nil
}
