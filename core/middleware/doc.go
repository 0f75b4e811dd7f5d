// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth (middleware/auth): API key validation through the X-API-Key header. An empty
//     configured key disables the check.
//   - RayID (middleware/rayid): a unique request id for every incoming request, stored
//     in the context locals and echoed in the X-Ray-ID response header for tracing.
//
// These middleware components are registered globally in the start command.
package middleware
