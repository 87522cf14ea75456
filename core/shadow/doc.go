// Package shadow is the device shadow store.
//
// A shadow is a per-device JSON document with a desired section (cloud to
// device intent) and a reported section (device confirmation). Callers never
// replace a document: they send a Patch, which every backend applies as an
// RFC 7386 merge patch. Keys present in the patch overwrite, absent keys are
// preserved and a null value deletes the key. Arrays are replaced wholesale.
//
// # Backends
//
//   - memory: process-local map, used by tests and the CLI dry runs.
//   - database: gorm "shadows" table (mysql or sqlite) with a compare-and-swap
//     on the document version.
//   - object: one JSON object per device in an S3/MinIO bucket.
//
// # Usage
//
//	store, err := shadow.NewStore(cfg.Shadow, db, storageClient, cfg.Storage.Bucket)
//	doc, err := store.Get(ctx, "device-1")
//	doc, err = store.Update(ctx, "device-1", shadow.Patch{Desired: map[string]any{"dsrdVrs": 2}})
//
// Get returns (nil, nil) when the device has no shadow yet. Every failure
// talking to a backend is an apperror StoreError.
package shadow
