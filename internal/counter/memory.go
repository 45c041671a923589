package counter

import (
	"context"
	"sync/atomic"

	"github.com/shortly/keygen-service/internal/generator"
)

// Memory is a process-local atomic counter. It carries the same contract
// as the Redis counter but only within one process, which makes it
// suitable for tests and single-instance deployments.
type Memory struct {
	n atomic.Uint64
}

var _ generator.Counter = (*Memory)(nil)

// NewMemory creates a Memory counter whose first Next returns start+1.
func NewMemory(start uint64) *Memory {
	m := &Memory{}
	m.n.Store(start)
	return m
}

func (c *Memory) Next(ctx context.Context) (uint64, error) {
	return c.n.Add(1), nil
}
