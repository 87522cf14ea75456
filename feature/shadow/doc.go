// Package shadow exposes read access to device shadows and the delta trigger.
//
// # HTTP Endpoints
//
//   - GET /shadows/:id : Returns the stored shadow document.
//   - POST /shadows/:id/delta : Sends an empty update so the device receives its pending delta (supports ?clientToken=).
//
// Concurrent reads of the same device share one store round trip.
package shadow
