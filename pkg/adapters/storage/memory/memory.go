package memory

import (
	"context"
	"sync"

	"github.com/liquiditylab/lcrsim/pkg/ports"
)

// Probe implements DatabaseProbe with a canned result
// This is for testing purposes only
type Probe struct {
	result ports.CheckResult
	mu     sync.RWMutex
}

// NewProbe creates a new in-memory probe returning the given result
func NewProbe(result ports.CheckResult) *Probe {
	return &Probe{result: result}
}

// SetResult replaces the result returned by subsequent checks
func (p *Probe) SetResult(result ports.CheckResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.result = result
}

// Check returns the canned result (ports.DatabaseProbe interface)
func (p *Probe) Check(ctx context.Context) ports.CheckResult {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.result
}
