// Package counter provides implementations of the shared atomic counter
// the counter-backed key generation strategies delegate uniqueness to.
package counter

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shortly/keygen-service/internal/generator"
)

// Redis is a counter backed by a Redis INCR on a namespace key. The key is
// created by the store on first increment and is never reset by this
// service. INCR is a single atomic round-trip, so no local state or
// locking is needed for cross-process monotonicity.
type Redis struct {
	client    *redis.Client
	namespace string
}

var _ generator.Counter = (*Redis)(nil)

// NewRedis creates a Redis counter on the given namespace key.
func NewRedis(client *redis.Client, namespace string) *Redis {
	return &Redis{
		client:    client,
		namespace: namespace,
	}
}

func (c *Redis) Next(ctx context.Context) (uint64, error) {
	n, err := c.client.Incr(ctx, c.namespace).Result()
	if err != nil {
		return 0, fmt.Errorf("incr %q: %w", c.namespace, err)
	}
	if n <= 0 {
		// Only possible when the key was set out of band; a wrapped or
		// negative counter cannot guarantee uniqueness.
		return 0, fmt.Errorf("incr %q returned non-positive value %d", c.namespace, n)
	}
	return uint64(n), nil
}
