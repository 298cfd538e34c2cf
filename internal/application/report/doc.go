// Package report implements the run-request validation and the mock
// dataset synthesis behind the run endpoint.
//
// The request parser normalizes and validates:
//   - report dates in the fixed DDMMMYYYY layout
//   - comma-separated report line numbers
//   - 2 or 3 letter ISO country codes
//
// The generator fabricates deterministic rows from a fixed random seed
// in place of the real downstream report job.
package report
