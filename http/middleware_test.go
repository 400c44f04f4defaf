package http_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	wlhttp "github.com/farhanyp/woordenlijst/http"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("body"))
	})

	rec := httptest.NewRecorder()
	wlhttp.RequestLogger(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", http.NoBody))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), "method=GET")
	assert.Contains(t, buf.String(), "path=/api/status")
	assert.Contains(t, buf.String(), "status=418")
	assert.Contains(t, buf.String(), "bytes=4")
}
