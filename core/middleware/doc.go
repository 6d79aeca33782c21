// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: Implements API key validation (X-API-Key) to protect endpoints.
//     Public paths such as /health can be exempted.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// RayID is registered first so that even rejected requests carry an id.
package middleware
