package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultSubmitTTL = 10 * time.Second

// SubmitGuard detects repeated form submissions.
// Key format: submit:<context id>:<idempotency key>
type SubmitGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSubmitGuard(client *redis.Client, ttl time.Duration) *SubmitGuard {
	if ttl <= 0 {
		ttl = defaultSubmitTTL
	}
	return &SubmitGuard{client: client, ttl: ttl}
}

// Claim records the submission and reports whether it is the first one seen
// within the TTL.
func (g *SubmitGuard) Claim(ctx context.Context, contextID, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(contextID, key), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("submit guard: %w", err)
	}
	return ok, nil
}

// Release forgets a submission so it can be retried, e.g. after the backend
// rejected it.
func (g *SubmitGuard) Release(ctx context.Context, contextID, key string) error {
	return g.client.Del(ctx, g.key(contextID, key)).Err()
}

func (g *SubmitGuard) key(contextID, key string) string {
	return fmt.Sprintf("submit:%s:%s", contextID, key)
}
