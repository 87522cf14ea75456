// Package integrity checks that the infrastructure behind the shadow store is
// in place.
//
// # Checks Provided
//
//   - Bucket: the object store bucket holding shadow documents exists.
//   - Schema: the shadows table has every column of the model with a compatible type.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/bucket : Runs the bucket check (supports ?fix=true).
//   - GET /integrity/schema : Runs the schema check.
package integrity
