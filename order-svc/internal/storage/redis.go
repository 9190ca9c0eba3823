package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ClaimStore holds short-lived accept markers so the second of two racing
// couriers can be rejected without hitting Postgres. Markers expire on
// their own; the database row is the source of truth.
type ClaimStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewClaimStore(client *redis.Client, ttl time.Duration) *ClaimStore {
	return &ClaimStore{Client: client, TTL: ttl}
}

func (c *ClaimStore) ClaimKey(orderID string) string {
	return "claim:order:" + orderID
}

func (c *ClaimStore) AcquireClaim(ctx context.Context, key, courierID string) (bool, error) {
	return c.Client.SetNX(ctx, key, courierID, c.TTL).Result()
}

func (c *ClaimStore) ReleaseClaim(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}
