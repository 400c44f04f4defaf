// Package objectstore backs the slot with a single object at a fixed
// folder/name key in an S3-compatible object store, addressed over
// HTTP via the MinIO client.
//
// Consistency: a replace is delete-then-upload, so a read racing a
// replace may observe a not-found window between the old object being
// deleted and the new upload landing. Reads after the upload returns
// observe the new content subject to the remote service's own
// read-after-write guarantees.
package objectstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/farhanyp/woordenlijst"
)

// Config holds the connection settings and the slot's fixed remote key.
// Credentials are passed in explicitly; the store never reads ambient
// process state.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool

	Bucket     string
	Folder     string
	ObjectName string

	// PublicBaseURL is the browser-accessible base URL for the bucket,
	// e.g. "http://localhost:9000/woordenlijst". Content reads resolve
	// the object's public URL under this base.
	PublicBaseURL string
}

// Store is the remote SlotStore. Content reads are two-hop: a metadata
// lookup resolves the object's public URL, then a plain HTTP fetch
// retrieves the bytes.
type Store struct {
	client     *minio.Client
	httpClient *http.Client
	bucket     string
	key        string
	publicBase string
}

// New creates the MinIO client, ensures the bucket exists with an
// anonymous-read policy so the slot has a stable public URL, and
// returns a ready-to-use Store.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("new object store: bucket cannot be empty")
	}
	if !woordenlijst.IsValidSlotName(cfg.ObjectName) {
		return nil, fmt.Errorf("new object store: invalid object name: %q", cfg.ObjectName)
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("new object store: create client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, classify(fmt.Errorf("check bucket existence: %w", err))
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, classify(fmt.Errorf("create bucket %q: %w", cfg.Bucket, err))
		}
		slog.Info("created bucket", "bucket", cfg.Bucket)
	}

	if err := client.SetBucketPolicy(ctx, cfg.Bucket, publicReadPolicy(cfg.Bucket)); err != nil {
		return nil, classify(fmt.Errorf("set bucket policy: %w", err))
	}

	return &Store{
		client:     client,
		httpClient: &http.Client{},
		bucket:     cfg.Bucket,
		key:        path.Join(cfg.Folder, cfg.ObjectName),
		publicBase: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// PublicURL returns the browser-accessible URL of the slot object.
func (s *Store) PublicURL() string {
	return s.publicBase + "/" + s.key
}

// Exists reports whether an object is currently stored at the key.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, s.key, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, classify(fmt.Errorf("stat object %q: %w", s.key, err))
	}
	return true, nil
}

// Stat returns the stored object's metadata without fetching content.
func (s *Store) Stat(ctx context.Context) (woordenlijst.SlotMetadata, error) {
	info, err := s.client.StatObject(ctx, s.bucket, s.key, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return woordenlijst.SlotMetadata{}, woordenlijst.ErrNotFound
		}
		return woordenlijst.SlotMetadata{}, classify(fmt.Errorf("stat object %q: %w", s.key, err))
	}
	return s.metadata(info), nil
}

// Get performs the two-hop read: a metadata lookup resolves the public
// URL, then a second HTTP fetch retrieves the raw bytes. Failures of
// the second hop are reported as BackendError distinct from lookup
// failures.
func (s *Store) Get(ctx context.Context) (woordenlijst.SlotContent, error) {
	info, err := s.client.StatObject(ctx, s.bucket, s.key, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return woordenlijst.SlotContent{}, woordenlijst.ErrNotFound
		}
		return woordenlijst.SlotContent{}, classify(fmt.Errorf("stat object %q: %w", s.key, err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.PublicURL(), http.NoBody)
	if err != nil {
		return woordenlijst.SlotContent{}, classify(fmt.Errorf("build content request: %w", err))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return woordenlijst.SlotContent{}, classify(fmt.Errorf("fetch object content: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		// The object vanished between lookup and fetch (replace window).
		return woordenlijst.SlotContent{}, woordenlijst.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return woordenlijst.SlotContent{}, woordenlijst.NewBackendError(
			woordenlijst.BackendUnexpected,
			fmt.Errorf("fetch object content: unexpected status %d", resp.StatusCode),
		)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return woordenlijst.SlotContent{}, classify(fmt.Errorf("read object content: %w", err))
	}

	return woordenlijst.SlotContent{Content: content, Metadata: s.metadata(info)}, nil
}

// Put replaces the slot object: look up the existing object, attempt a
// best-effort delete, then upload the new payload. A failed delete is
// logged and does not abort the upload; the upload itself overwrites
// whatever is stored at the key, which is the authoritative guarantee
// that the key resolves only to the new content.
func (s *Store) Put(ctx context.Context, content []byte, contentType string) (woordenlijst.SlotMetadata, error) {
	_, statErr := s.client.StatObject(ctx, s.bucket, s.key, minio.StatObjectOptions{})
	switch {
	case statErr == nil:
		if err := s.client.RemoveObject(ctx, s.bucket, s.key, minio.RemoveObjectOptions{}); err != nil && !isNotFound(err) {
			// Best-effort reclaim: the old object may be orphaned, but
			// the overwrite below still supersedes it at the key.
			slog.Warn("failed to remove previous object, continuing with upload",
				"key", s.key, "err", err)
		}
	case isNotFound(statErr):
		// Empty slot, nothing to reclaim.
	default:
		slog.Warn("failed to look up previous object, continuing with upload",
			"key", s.key, "err", statErr)
	}

	info, err := s.client.PutObject(ctx, s.bucket, s.key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return woordenlijst.SlotMetadata{}, classify(fmt.Errorf("put object %q: %w", s.key, err))
	}

	lastModified := info.LastModified
	if lastModified.IsZero() {
		lastModified = time.Now().UTC()
	}

	return woordenlijst.SlotMetadata{
		Key:          s.key,
		Location:     s.PublicURL(),
		ContentType:  contentType,
		SizeBytes:    info.Size,
		LastModified: lastModified,
	}, nil
}

func (s *Store) metadata(info minio.ObjectInfo) woordenlijst.SlotMetadata {
	contentType := info.ContentType
	if contentType == "" {
		contentType = woordenlijst.TextMediaType
	}
	return woordenlijst.SlotMetadata{
		Key:          s.key,
		Location:     s.PublicURL(),
		ContentType:  contentType,
		SizeBytes:    info.Size,
		LastModified: info.LastModified,
	}
}

// isNotFound reports whether err is the remote service's not-found
// response rather than a transport or server failure.
func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	if resp.StatusCode == http.StatusNotFound {
		return true
	}
	switch resp.Code {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return true
	}
	return false
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return woordenlijst.NewBackendError(woordenlijst.BackendTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return woordenlijst.NewBackendError(woordenlijst.BackendTimeout, err)
	}

	var urlErr *url.Error
	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &urlErr) || errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return woordenlijst.NewBackendError(woordenlijst.BackendUnreachable, err)
	}

	return woordenlijst.NewBackendError(woordenlijst.BackendUnexpected, err)
}

// publicReadPolicy returns a bucket policy JSON allowing anonymous GET
// on all objects, which keeps the slot's public URL fetchable.
func publicReadPolicy(bucket string) string {
	policy := map[string]any{
		"Version": "2012-10-17",
		"Statement": []map[string]any{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
