// Package filesystem backs the slot with a single file at a fixed path
// inside a managed directory. Writes are atomic: content is staged into
// a temp file in the same directory and renamed over the target, so a
// concurrent read never observes a partial write.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/farhanyp/woordenlijst"
)

// Store is the local filesystem SlotStore. The managed directory is
// created lazily on the first Put; file handles are opened and closed
// per call, never held across requests.
type Store struct {
	dir  string
	name string
}

// NewSlotStore creates a Store managing dir/name. The directory does
// not need to exist yet.
func NewSlotStore(dir, name string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("new slot store: directory cannot be empty")
	}
	if !woordenlijst.IsValidSlotName(name) {
		return nil, fmt.Errorf("new slot store: invalid slot file name: %q", name)
	}
	return &Store{dir: dir, name: name}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, s.name)
}

// Exists reports whether the slot file is present.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, classify(err)
	}

	_, err := os.Stat(s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, classify(fmt.Errorf("stat slot file: %w", err))
	}
	return true, nil
}

// Stat returns metadata for the slot file without reading its content.
func (s *Store) Stat(ctx context.Context) (woordenlijst.SlotMetadata, error) {
	if err := ctx.Err(); err != nil {
		return woordenlijst.SlotMetadata{}, classify(err)
	}

	info, err := os.Stat(s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return woordenlijst.SlotMetadata{}, woordenlijst.ErrNotFound
		}
		return woordenlijst.SlotMetadata{}, classify(fmt.Errorf("stat slot file: %w", err))
	}

	return s.metadata(info.Size(), info), nil
}

// Get reads the slot file and returns its content with metadata.
func (s *Store) Get(ctx context.Context) (woordenlijst.SlotContent, error) {
	if err := ctx.Err(); err != nil {
		return woordenlijst.SlotContent{}, classify(err)
	}

	content, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return woordenlijst.SlotContent{}, woordenlijst.ErrNotFound
		}
		return woordenlijst.SlotContent{}, classify(fmt.Errorf("read slot file: %w", err))
	}

	info, err := os.Stat(s.path())
	if err != nil {
		return woordenlijst.SlotContent{}, classify(fmt.Errorf("stat slot file: %w", err))
	}

	return woordenlijst.SlotContent{
		Content:  content,
		Metadata: s.metadata(int64(len(content)), info),
	}, nil
}

// Put replaces the slot file's content. The managed directory is
// created if absent. Content is written to a temp file in the same
// directory, synced, and renamed over the target so the replace is
// atomic with respect to concurrent reads.
func (s *Store) Put(ctx context.Context, content []byte, contentType string) (woordenlijst.SlotMetadata, error) {
	if err := ctx.Err(); err != nil {
		return woordenlijst.SlotMetadata{}, classify(err)
	}

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return woordenlijst.SlotMetadata{}, classify(fmt.Errorf("create slot directory: %w", err))
	}

	tmpPath := filepath.Join(s.dir, tmpFileName())
	t, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return woordenlijst.SlotMetadata{}, classify(fmt.Errorf("create temp file: %w", err))
	}

	success := false
	defer func() {
		if !success {
			if rmErr := os.Remove(tmpPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				slog.Warn("failed to remove temp file", "path", tmpPath, "err", rmErr)
			}
		}
	}()

	if _, err = t.Write(content); err != nil {
		_ = t.Close()
		return woordenlijst.SlotMetadata{}, classify(fmt.Errorf("write temp file: %w", err))
	}

	if err = t.Sync(); err != nil {
		_ = t.Close()
		return woordenlijst.SlotMetadata{}, classify(fmt.Errorf("sync temp file: %w", err))
	}

	if err = t.Close(); err != nil {
		return woordenlijst.SlotMetadata{}, classify(fmt.Errorf("close temp file: %w", err))
	}

	if err = os.Rename(tmpPath, s.path()); err != nil {
		return woordenlijst.SlotMetadata{}, classify(fmt.Errorf("rename temp file: %w", err))
	}
	success = true

	info, err := os.Stat(s.path())
	if err != nil {
		return woordenlijst.SlotMetadata{}, classify(fmt.Errorf("stat slot file: %w", err))
	}

	return s.metadata(int64(len(content)), info), nil
}

func (s *Store) metadata(size int64, info fs.FileInfo) woordenlijst.SlotMetadata {
	return woordenlijst.SlotMetadata{
		Key:          s.name,
		Location:     s.path(),
		ContentType:  detectContentType(s.name),
		SizeBytes:    size,
		LastModified: info.ModTime(),
	}
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return woordenlijst.NewBackendError(woordenlijst.BackendTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return woordenlijst.NewBackendError(woordenlijst.BackendUnexpected, err)
}

func detectContentType(name string) string {
	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		return "application/octet-stream"
	}
	return contentType
}

func tmpFileName() string {
	return fmt.Sprintf(".t%s", uuid.New().String())
}
