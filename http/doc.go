// Package http exposes the slot operations over a small REST API.
//
// # Routes
//
//   - POST /api/upload: multipart upload (field "file"); validates the
//     payload and unconditionally replaces the slot's content
//   - GET /api/status: occupancy probe, metadata only
//   - GET /api/fetch: returns the slot's current text content
//
// There is no delete route: the slot's contract is replace-via-upload
// only, and its public identity is fixed per deployment. The declared
// filename on upload feeds validation but never chooses where the
// content lands.
//
// # Errors
//
// All errors are JSON {error, message} bodies. Validation failures are
// 400 with a specific reason, an empty slot is 404, and backend
// failures map by kind: timeout 504, unreachable 502, anything else
// 500. Backend diagnostic detail is logged but never surfaced.
//
// # Usage
//
//	handlerCfg := http.HandlerConfig{RequestTimeout: 30 * time.Second}
//	handler := http.NewHandler(&handlerCfg,
//	    woordenlijst.NewUploadService(store),
//	    woordenlijst.NewRetrievalService(store),
//	    woordenlijst.NewStatusService(store),
//	)
//	http.ListenAndServe(":8572", handler.Router())
package http
