// Package metrics exposes the Prometheus collectors for shadow-sync.
//
// Collectors are registered with the default registry at package init and
// served by Handler, which the start command mounts at /metrics.
//
// # Collectors
//
//   - shadowsync_reconcile_total{pipeline,outcome}: one increment per reconcile call.
//   - shadowsync_fields_unchanged_total{field}: desired fields dropped as no-ops.
//   - shadowsync_store_duration_seconds{backend,op}: shadow store latency.
//
// # Usage
//
//	timer := metrics.NewTimer()
//	doc, err := store.Get(ctx, id)
//	timer.ObserveStore("database", "get")
package metrics
