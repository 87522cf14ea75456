// Package apperror classifies the errors surfaced by the reconcilers.
//
// Every error that leaves a reconciler renders with a stable, bracketed prefix
// so that callers (HTTP clients, CLI scripts) can branch on the error class:
//
//	[ValidationError] - update is missing a desired version
//	[StoreError] - failed to read shadow: connection refused
//	[InternalError] - unexpected value in event
//
// Validation errors are never retried. Store errors are propagated as-is; this
// layer adds no retry policy.
package apperror
