// Package reconcile holds the pieces shared by the desired and reported
// reconcilers.
//
// Both pipelines follow the same shape: build a Plan with a single shadow
// read, then Apply it with a single shadow write. A Plan is complete before
// anything is written, so a rejected or failed plan never leaves a partially
// updated shadow behind, and a plan can be printed instead of applied
// (dry run).
//
//	plan, err := reconciler.Plan(ctx, req)   // fetch, env check, normalize, diff
//	doc, err := reconcile.Apply(ctx, store, plan)
//
// # Configuration
//
// Config is passed to each reconciler at construction; nothing in this
// package reads process-wide state. DefaultConfig documents the defaults.
package reconcile
