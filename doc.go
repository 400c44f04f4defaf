// Package woordenlijst maintains a single named text artifact (the
// "slot") that can be uploaded, replaced, and retrieved through
// interchangeable storage backends.
//
// The slot has a fixed key per deployment; callers never choose where
// their content lands. An upload unconditionally supersedes any prior
// content at the key, regardless of whether physical cleanup of the old
// payload succeeds.
//
// # Key Components
//
//   - SlotStore: storage contract (Exists, Stat, Get, Put) with two
//     implementations: a local filesystem file (filesystem package) and
//     a remote object in an S3-compatible store (objectstore package)
//   - UploadService: validation + existence probe + unconditional replace
//   - RetrievalService: resolves and returns the slot's current content
//   - StatusService: occupancy probe without content transfer
//   - ValidateUpload: plain-text-only, 1 MiB inclusive size cap
//
// # Example Usage
//
//	store, err := filesystem.NewSlotStore("./uploads", "upload.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	uploads := woordenlijst.NewUploadService(store)
//	result, err := uploads.Upload(ctx, payload, "text/plain", "note.txt")
//
//	retrieval := woordenlijst.NewRetrievalService(store)
//	content, err := retrieval.Fetch(ctx)
//
// Services are stateless: every call re-derives slot state from the
// backend, and concurrent uploads resolve last-writer-wins. See the
// http package for the REST boundary and the config package for
// backend selection.
package woordenlijst
