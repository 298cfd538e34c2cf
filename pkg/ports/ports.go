// Package ports defines the interfaces wired between the application
// layer, the HTTP API and the adapters.
package ports

import (
	"context"
	"time"
)

// CheckResult describes the outcome of a database connectivity check.
// Absence of configuration is a normal state, not an error.
type CheckResult struct {
	// Configured is true when a database URL and name are both present.
	Configured bool

	// Connected is true when the database answered a ping.
	Connected bool

	// Collections holds the collection names found, in server order.
	Collections []string

	// Err holds a connect or ping failure.
	Err error

	// ListErr holds a collection listing failure after a successful ping.
	ListErr error
}

// DatabaseProbe checks connectivity of the optional report store.
type DatabaseProbe interface {
	// Check performs a single connectivity check. It never panics and
	// never returns an error; failures are carried in the result.
	Check(ctx context.Context) CheckResult
}

// MetricsCollector records service metrics.
type MetricsCollector interface {
	// ObserveRequest records one handled HTTP request.
	ObserveRequest(method, path string, status int, duration time.Duration)

	// RecordRun records a run request outcome and the rows it produced.
	RecordRun(status string, rows int)

	// RecordDatabaseCheck records a diagnostic check outcome.
	RecordDatabaseCheck(status string)
}
