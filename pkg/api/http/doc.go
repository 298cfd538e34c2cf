// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - Dashboard greetings
//   - Database connectivity diagnostics
//   - Simulated report runs
//   - Health checks
//   - Prometheus metrics
package http
