package woordenlijst

import (
	"fmt"
	"time"
)

// SlotMetadata describes the payload currently held by the slot.
type SlotMetadata struct {
	Key          string    `json:"key"`
	Location     string    `json:"location"`
	ContentType  string    `json:"content_type"`
	SizeBytes    int64     `json:"size_bytes"`
	LastModified time.Time `json:"last_modified"`
}

// SlotContent is the slot's payload together with its metadata.
type SlotContent struct {
	Content  []byte       `json:"content"`
	Metadata SlotMetadata `json:"metadata"`
}

// UploadResult reports the outcome of a successful upload.
// Replaced is true when the slot was already occupied before the upload.
type UploadResult struct {
	Replaced bool         `json:"replaced"`
	Metadata SlotMetadata `json:"metadata"`
}

// SlotStatus reports slot occupancy without carrying content.
// Metadata is nil when the slot is empty.
type SlotStatus struct {
	Exists   bool          `json:"exists"`
	Metadata *SlotMetadata `json:"metadata,omitempty"`
}

// StorageBackend selects which SlotStore implementation backs the slot.
type StorageBackend string

const (
	BackendLocal  StorageBackend = "local"
	BackendRemote StorageBackend = "remote"
)

func (b StorageBackend) IsValid() bool {
	switch b {
	case BackendLocal, BackendRemote:
		return true
	default:
		return false
	}
}

func ParseStorageBackend(s string) (StorageBackend, error) {
	b := StorageBackend(s)
	if !b.IsValid() {
		return "", fmt.Errorf("invalid storage backend: %s (valid backends: local, remote)", s)
	}
	return b, nil
}
