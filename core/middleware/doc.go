// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or api_key query). Disabled
//     when no key is configured.
//   - rayid: assigns every request a ray id, reusing an incoming X-Ray-ID,
//     and echoes it in the response.
//
// Both are registered globally by the start command; rayid runs first so
// rejected requests are traceable too.
package middleware
