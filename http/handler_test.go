package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/farhanyp/woordenlijst"
	"github.com/farhanyp/woordenlijst/filesystem"
	wlhttp "github.com/farhanyp/woordenlijst/http"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store, err := filesystem.NewSlotStore(t.TempDir(), "upload.txt")
	assert.NoError(t, err)

	handler := wlhttp.NewHandler(
		&wlhttp.HandlerConfig{},
		woordenlijst.NewUploadService(store),
		woordenlijst.NewRetrievalService(store),
		woordenlijst.NewStatusService(store),
	)
	return handler.Router()
}

func multipartUpload(t *testing.T, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHandler_Upload(t *testing.T) {
	t.Run("first upload into empty slot", func(t *testing.T) {
		router := newTestRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartUpload(t, "note.txt", "text/plain", []byte("hallo tekst")))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp wlhttp.UploadResponse
		decodeJSON(t, rec, &resp)
		assert.False(t, resp.Replaced)
		assert.Equal(t, "upload.txt", resp.Filename)
		assert.Equal(t, int64(11), resp.SizeBytes)
		assert.Equal(t, "hallo tekst", resp.Preview)
		assert.Contains(t, resp.Message, "successfully uploaded")
	})

	t.Run("missing file field", func(t *testing.T) {
		router := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader("not a form"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp wlhttp.ErrorResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, "no_file", resp.Error)
	})

	t.Run("rejects non-text upload", func(t *testing.T) {
		router := newTestRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartUpload(t, "photo.png", "image/png", []byte{0x89, 0x50}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp wlhttp.ErrorResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, "validation_failed", resp.Error)
		assert.Equal(t, "Only .txt files are allowed", resp.Message)
	})

	t.Run("accepts payload at exactly the size limit", func(t *testing.T) {
		router := newTestRouter(t)

		payload := bytes.Repeat([]byte("a"), woordenlijst.MaxUploadBytes)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartUpload(t, "big.txt", "text/plain", payload))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp wlhttp.UploadResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, int64(woordenlijst.MaxUploadBytes), resp.SizeBytes)
	})

	t.Run("rejects payload one byte over the limit", func(t *testing.T) {
		router := newTestRouter(t)

		payload := bytes.Repeat([]byte("a"), woordenlijst.MaxUploadBytes+1)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartUpload(t, "big.txt", "text/plain", payload))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp wlhttp.ErrorResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, "validation_failed", resp.Error)
		assert.Equal(t, "File size too large. Maximum 1MB allowed.", resp.Message)
	})

	t.Run("long content is truncated in the preview", func(t *testing.T) {
		router := newTestRouter(t)

		payload := []byte(strings.Repeat("x", 150))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartUpload(t, "long.txt", "text/plain", payload))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp wlhttp.UploadResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, strings.Repeat("x", 100)+"...", resp.Preview)
	})
}

func TestHandler_Status(t *testing.T) {
	t.Run("empty slot", func(t *testing.T) {
		router := newTestRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", http.NoBody))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp wlhttp.StatusResponse
		decodeJSON(t, rec, &resp)
		assert.False(t, resp.Exists)
		assert.Nil(t, resp.SizeBytes)
		assert.Nil(t, resp.LastModified)
	})

	t.Run("occupied slot reports metadata", func(t *testing.T) {
		router := newTestRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartUpload(t, "note.txt", "text/plain", []byte("1234567890")))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp wlhttp.StatusResponse
		decodeJSON(t, rec, &resp)
		assert.True(t, resp.Exists)
		assert.Equal(t, "upload.txt", resp.Name)
		assert.NotNil(t, resp.SizeBytes)
		assert.Equal(t, int64(10), *resp.SizeBytes)
		assert.NotNil(t, resp.LastModified)
	})
}

func TestHandler_Fetch(t *testing.T) {
	t.Run("empty slot", func(t *testing.T) {
		router := newTestRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/fetch", http.NoBody))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp wlhttp.ErrorResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, "not_found", resp.Error)
		assert.Equal(t, "Text file not found. Please upload a file first.", resp.Message)
	})

	t.Run("returns stored content", func(t *testing.T) {
		router := newTestRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartUpload(t, "note.txt", "text/plain", []byte("stored text")))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/fetch", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp wlhttp.FetchResponse
		decodeJSON(t, rec, &resp)
		assert.Equal(t, "stored text", resp.Content)
		assert.Equal(t, "upload.txt", resp.Filename)
	})
}

// TestHandler_Lifecycle walks the slot through upload, status, fetch,
// replace, and re-fetch against a real filesystem store.
func TestHandler_Lifecycle(t *testing.T) {
	router := newTestRouter(t)

	// Upload a 10-byte file.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartUpload(t, "note.txt", "text/plain", []byte("31 letters")))
	assert.Equal(t, http.StatusOK, rec.Code)

	var uploadResp wlhttp.UploadResponse
	decodeJSON(t, rec, &uploadResp)
	assert.False(t, uploadResp.Replaced)
	assert.Equal(t, int64(10), uploadResp.SizeBytes)

	// Status reflects it.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", http.NoBody))
	var statusResp wlhttp.StatusResponse
	decodeJSON(t, rec, &statusResp)
	assert.True(t, statusResp.Exists)
	assert.Equal(t, int64(10), *statusResp.SizeBytes)

	// Replace with a 5-byte file.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, multipartUpload(t, "other.txt", "text/plain", []byte("kort!")))
	assert.Equal(t, http.StatusOK, rec.Code)

	decodeJSON(t, rec, &uploadResp)
	assert.True(t, uploadResp.Replaced)
	assert.Equal(t, int64(5), uploadResp.SizeBytes)
	assert.Contains(t, uploadResp.Message, "successfully replaced")

	// Fetch observes only the new content.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/fetch", http.NoBody))
	assert.Equal(t, http.StatusOK, rec.Code)

	var fetchResp wlhttp.FetchResponse
	decodeJSON(t, rec, &fetchResp)
	assert.Equal(t, "kort!", fetchResp.Content)
}

type stubFailingStore struct {
	err error
}

func (s *stubFailingStore) Exists(context.Context) (bool, error) { return false, s.err }
func (s *stubFailingStore) Stat(context.Context) (woordenlijst.SlotMetadata, error) {
	return woordenlijst.SlotMetadata{}, s.err
}
func (s *stubFailingStore) Get(context.Context) (woordenlijst.SlotContent, error) {
	return woordenlijst.SlotContent{}, s.err
}
func (s *stubFailingStore) Put(context.Context, []byte, string) (woordenlijst.SlotMetadata, error) {
	return woordenlijst.SlotMetadata{}, s.err
}

func TestHandler_BackendErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		kind       woordenlijst.BackendErrorKind
		wantStatus int
	}{
		{name: "timeout maps to 504", kind: woordenlijst.BackendTimeout, wantStatus: http.StatusGatewayTimeout},
		{name: "unreachable maps to 502", kind: woordenlijst.BackendUnreachable, wantStatus: http.StatusBadGateway},
		{name: "unexpected maps to 500", kind: woordenlijst.BackendUnexpected, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubFailingStore{err: woordenlijst.NewBackendError(tt.kind, assert.AnError)}
			handler := wlhttp.NewHandler(
				&wlhttp.HandlerConfig{},
				woordenlijst.NewUploadService(store),
				woordenlijst.NewRetrievalService(store),
				woordenlijst.NewStatusService(store),
			)
			router := handler.Router()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", http.NoBody))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp wlhttp.ErrorResponse
			decodeJSON(t, rec, &resp)
			assert.Equal(t, "backend_error", resp.Error)
		})
	}
}

func TestHandler_CORS(t *testing.T) {
	store, err := filesystem.NewSlotStore(t.TempDir(), "upload.txt")
	assert.NoError(t, err)

	handler := wlhttp.NewHandler(
		&wlhttp.HandlerConfig{
			CORS: wlhttp.CORSConfig{
				Enabled:        true,
				AllowedOrigins: []string{"https://example.com"},
				AllowedMethods: []string{"GET", "POST"},
			},
		},
		woordenlijst.NewUploadService(store),
		woordenlijst.NewRetrievalService(store),
		woordenlijst.NewStatusService(store),
	)
	router := handler.Router()

	req := httptest.NewRequest(http.MethodOptions, "/api/status", http.NoBody)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
