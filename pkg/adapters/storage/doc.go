// Package storage provides database connectivity probes.
//
// Implementations:
//   - mongo: MongoDB with a per-check connection (MVP)
//   - memory: Canned results for testing
package storage
