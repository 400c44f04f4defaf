package client_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/farhanyp/woordenlijst/client"
	"github.com/stretchr/testify/assert"
)

func TestHumanFormatter_FormatUpload(t *testing.T) {
	t.Run("upload", func(t *testing.T) {
		var buf bytes.Buffer
		f := &client.HumanFormatter{}

		err := f.FormatUpload(&buf, &client.UploadResult{
			LocalPath: "note.txt",
			Filename:  "upload.txt",
			SizeBytes: 1536,
			Preview:   "hallo",
		})
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "Uploaded: note.txt -> upload.txt")
		assert.Contains(t, buf.String(), "1.50 KiB")
		assert.Contains(t, buf.String(), "Preview: hallo")
	})

	t.Run("replace", func(t *testing.T) {
		var buf bytes.Buffer
		f := &client.HumanFormatter{}

		err := f.FormatUpload(&buf, &client.UploadResult{
			LocalPath: "note.txt",
			Filename:  "upload.txt",
			SizeBytes: 5,
			Replaced:  true,
		})
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "Replaced:")
		assert.Contains(t, buf.String(), "5 B")
	})

	t.Run("quiet suppresses output", func(t *testing.T) {
		var buf bytes.Buffer
		f := &client.HumanFormatter{Quiet: true}

		err := f.FormatUpload(&buf, &client.UploadResult{Filename: "upload.txt"})
		assert.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestHumanFormatter_FormatStatus(t *testing.T) {
	t.Run("empty slot", func(t *testing.T) {
		var buf bytes.Buffer
		f := &client.HumanFormatter{}

		err := f.FormatStatus(&buf, &client.StatusResult{Exists: false})
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "Slot is empty")
	})

	t.Run("occupied slot", func(t *testing.T) {
		var buf bytes.Buffer
		f := &client.HumanFormatter{}

		size := int64(42)
		modified := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		err := f.FormatStatus(&buf, &client.StatusResult{
			Exists:       true,
			Name:         "upload.txt",
			SizeBytes:    &size,
			LastModified: &modified,
			URL:          "/uploads/upload.txt",
		})
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "Slot is occupied: upload.txt")
		assert.Contains(t, buf.String(), "42 B")
		assert.Contains(t, buf.String(), "2025-06-01")
		assert.Contains(t, buf.String(), "/uploads/upload.txt")
	})
}

func TestHumanFormatter_FormatFetch(t *testing.T) {
	var buf bytes.Buffer
	f := &client.HumanFormatter{}

	err := f.FormatFetch(&buf, &client.FetchResult{Content: "raw content\n"})
	assert.NoError(t, err)
	assert.Equal(t, "raw content\n", buf.String())
}

func TestHumanFormatter_FormatProfileList(t *testing.T) {
	var buf bytes.Buffer
	f := &client.HumanFormatter{}

	profiles := []client.Profile{
		{Name: "dev", Endpoint: "http://localhost:8572"},
		{Name: "prod", Endpoint: "https://woordenlijst.example.com"},
	}
	err := f.FormatProfileList(&buf, profiles, "prod")
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "* prod")
	assert.Contains(t, buf.String(), "  dev")
}

func TestJSONFormatter(t *testing.T) {
	t.Run("upload result round trips", func(t *testing.T) {
		var buf bytes.Buffer
		f := &client.JSONFormatter{}

		err := f.FormatUpload(&buf, &client.UploadResult{Filename: "upload.txt", SizeBytes: 11})
		assert.NoError(t, err)

		var decoded map[string]any
		assert.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "upload.txt", decoded["filename"])
		assert.Equal(t, float64(11), decoded["size_bytes"])
	})

	t.Run("error shape", func(t *testing.T) {
		var buf bytes.Buffer
		f := &client.JSONFormatter{}

		err := f.FormatError(&buf, errors.New("boom"))
		assert.NoError(t, err)

		var decoded map[string]string
		assert.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "boom", decoded["error"])
	})
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &client.JSONFormatter{}, client.NewFormatter(true, false))
	assert.IsType(t, &client.HumanFormatter{}, client.NewFormatter(false, false))
}
