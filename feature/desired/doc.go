// Package desired implements the cloud-initiated configuration push.
//
// A desired update is accepted only when it carries the shadow's current
// desired version (dsrdVrs); it then writes the next version. Schedule arrays
// in the update are normalized and compared against the shadow, and arrays
// that did not change are left out of the patch so the device is not asked to
// apply them again.
//
// Pipeline: validate, fetch, env check, version check, normalize, diff, patch.
// Plan runs everything up to the patch with one shadow read; Reconcile also
// writes it with one shadow update.
//
// Routes:
//
//	PUT /shadows/:id/desired
package desired
