package client

import "time"

// UploadResult reports a completed slot upload.
type UploadResult struct {
	LocalPath string `json:"local_path"`
	Message   string `json:"message"`
	URL       string `json:"url"`
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"size_bytes"`
	Replaced  bool   `json:"replaced"`
	Preview   string `json:"preview"`
}

// StatusResult reports slot occupancy.
type StatusResult struct {
	Exists       bool       `json:"exists"`
	Name         string     `json:"name,omitempty"`
	SizeBytes    *int64     `json:"size_bytes,omitempty"`
	LastModified *time.Time `json:"last_modified,omitempty"`
	URL          string     `json:"url,omitempty"`
}

// FetchResult carries the slot's current text content.
type FetchResult struct {
	Content  string `json:"content"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// serverUploadResponse mirrors the JSON response from the server.
type serverUploadResponse struct {
	Message   string `json:"message"`
	URL       string `json:"url"`
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"size_bytes"`
	Replaced  bool   `json:"replaced"`
	Preview   string `json:"preview"`
}

// serverErrorResponse mirrors the server's JSON error body.
type serverErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
