package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/farhanyp/woordenlijst"
)

// previewLimit is the number of characters of stored text echoed back
// in upload and status responses.
const previewLimit = 100

// Uploader replaces the slot's content after validating the payload.
type Uploader interface {
	Upload(ctx context.Context, payload []byte, declaredMediaType, declaredName string) (woordenlijst.UploadResult, error)
}

// Fetcher resolves the slot's current content.
type Fetcher interface {
	Fetch(ctx context.Context) (woordenlijst.SlotContent, error)
}

// StatusReporter reports slot occupancy without fetching content.
type StatusReporter interface {
	Status(ctx context.Context) (woordenlijst.SlotStatus, error)
}

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type HandlerConfig struct {
	CORS CORSConfig

	// RequestTimeout bounds each backend call; zero disables the bound.
	RequestTimeout time.Duration
}

// Handler exposes the slot operations over HTTP.
type Handler struct {
	config HandlerConfig
	upload Uploader
	fetch  Fetcher
	status StatusReporter
}

// NewHandler creates a Handler wired to the three slot services.
func NewHandler(config *HandlerConfig, upload Uploader, fetch Fetcher, status StatusReporter) *Handler {
	return &Handler{
		config: *config,
		upload: upload,
		fetch:  fetch,
		status: status,
	}
}

// Router returns the configured http.Handler.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger)

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", h.handleUpload)
		r.Get("/status", h.handleStatus)
		r.Get("/fetch", h.handleFetch)
	})

	return r
}

// requestContext derives the per-request context, bounded by the
// configured timeout when one is set.
func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.config.RequestTimeout <= 0 {
		return r.Context(), func() {}
	}
	return context.WithTimeout(r.Context(), h.config.RequestTimeout)
}

// UploadResponse is the JSON body of a successful upload.
type UploadResponse struct {
	Message   string `json:"message"`
	URL       string `json:"url"`
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"size_bytes"`
	Replaced  bool   `json:"replaced"`
	Preview   string `json:"preview"`
}

// StatusResponse is the JSON body of a status probe.
type StatusResponse struct {
	Exists       bool       `json:"exists"`
	Name         string     `json:"name,omitempty"`
	SizeBytes    *int64     `json:"size_bytes,omitempty"`
	LastModified *time.Time `json:"last_modified,omitempty"`
	URL          string     `json:"url,omitempty"`
}

// FetchResponse is the JSON body of a content fetch.
type FetchResponse struct {
	Content  string `json:"content"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "no_file", "No file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	// Read one byte past the limit so the validator owns the bit-exact
	// size decision instead of a transport-level cap.
	payload, err := io.ReadAll(io.LimitReader(file, woordenlijst.MaxUploadBytes+1))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "unreadable_file", "Could not read uploaded file")
		return
	}

	result, err := h.upload.Upload(ctx, payload, header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		HandleError(w, err)
		return
	}

	message := fmt.Sprintf("File %s has been successfully uploaded", result.Metadata.Key)
	if result.Replaced {
		message = fmt.Sprintf("File %s has been successfully replaced", result.Metadata.Key)
	}

	_ = WriteJSON(w, http.StatusOK, UploadResponse{
		Message:   message,
		URL:       result.Metadata.Location,
		Filename:  result.Metadata.Key,
		SizeBytes: result.Metadata.SizeBytes,
		Replaced:  result.Replaced,
		Preview:   woordenlijst.Preview(string(payload), previewLimit),
	})
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	status, err := h.status.Status(ctx)
	if err != nil {
		HandleError(w, err)
		return
	}

	if !status.Exists {
		_ = WriteJSON(w, http.StatusOK, StatusResponse{Exists: false})
		return
	}

	meta := status.Metadata
	_ = WriteJSON(w, http.StatusOK, StatusResponse{
		Exists:       true,
		Name:         meta.Key,
		SizeBytes:    &meta.SizeBytes,
		LastModified: &meta.LastModified,
		URL:          meta.Location,
	})
}

func (h *Handler) handleFetch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	content, err := h.fetch.Fetch(ctx)
	if err != nil {
		if errors.Is(err, woordenlijst.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "not_found", "Text file not found. Please upload a file first.")
			return
		}
		HandleError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, FetchResponse{
		Content:  string(content.Content),
		URL:      content.Metadata.Location,
		Filename: content.Metadata.Key,
	})
}
