package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP client timeout.
const DefaultTimeout = 30 * time.Second

// Client performs slot operations against a woordenlijst server.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new Client with the given config and options.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	cfg = cfg.WithDefaults()

	c := &Client{
		config:     &Config{Endpoint: strings.TrimSuffix(cfg.Endpoint, "/")},
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Upload sends a local text file to the server, replacing the slot's
// current content. The file's name feeds the server's validation only;
// the slot's key stays fixed server-side.
func (c *Client) Upload(ctx context.Context, localPath string) (UploadResult, error) {
	if localPath == "" {
		return UploadResult{}, fmt.Errorf("upload: %w", ErrEmptyPath)
	}

	payload, err := os.ReadFile(localPath) //#nosec G304 -- localPath is user-provided input
	if err != nil {
		return UploadResult{}, fmt.Errorf("read file: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(localPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(localPath)))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return UploadResult{}, fmt.Errorf("create form part: %w", err)
	}
	if _, err = part.Write(payload); err != nil {
		return UploadResult{}, fmt.Errorf("write form part: %w", err)
	}
	if err = mw.Close(); err != nil {
		return UploadResult{}, fmt.Errorf("finish form body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint+"/api/upload", &body)
	if err != nil {
		return UploadResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UploadResult{}, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return UploadResult{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return UploadResult{}, parseServerError(resp.StatusCode, respBody)
	}

	var sr serverUploadResponse
	if err := json.Unmarshal(respBody, &sr); err != nil {
		return UploadResult{}, fmt.Errorf("parse response: %w", err)
	}

	return UploadResult{
		LocalPath: localPath,
		Message:   sr.Message,
		URL:       sr.URL,
		Filename:  sr.Filename,
		SizeBytes: sr.SizeBytes,
		Replaced:  sr.Replaced,
		Preview:   sr.Preview,
	}, nil
}

// Status probes the server for slot occupancy.
func (c *Client) Status(ctx context.Context) (StatusResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Endpoint+"/api/status", http.NoBody)
	if err != nil {
		return StatusResult{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return StatusResult{}, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return StatusResult{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return StatusResult{}, parseServerError(resp.StatusCode, body)
	}

	var result StatusResult
	if err := json.Unmarshal(body, &result); err != nil {
		return StatusResult{}, fmt.Errorf("parse response: %w", err)
	}

	return result, nil
}

// Fetch retrieves the slot's current content. An empty slot yields
// ErrSlotEmpty.
func (c *Client) Fetch(ctx context.Context) (FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Endpoint+"/api/fetch", http.NoBody)
	if err != nil {
		return FetchResult{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return FetchResult{}, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return FetchResult{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return FetchResult{}, ErrSlotEmpty
	}
	if resp.StatusCode != http.StatusOK {
		return FetchResult{}, parseServerError(resp.StatusCode, body)
	}

	var result FetchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return FetchResult{}, fmt.Errorf("parse response: %w", err)
	}

	return result, nil
}

// parseServerError turns a non-success server response into an error,
// preferring the server's JSON error body when it parses.
func parseServerError(statusCode int, body []byte) error {
	var se serverErrorResponse
	if err := json.Unmarshal(body, &se); err == nil && se.Message != "" {
		return fmt.Errorf("server error (%d %s): %s", statusCode, se.Error, se.Message)
	}
	return fmt.Errorf("server error: status %d", statusCode)
}
