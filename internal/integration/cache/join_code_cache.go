// Package cache implements Redis-backed caches for hot lookup paths.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kumpul/backend/internal/application/adapter"
)

const (
	joinCodeKeyPrefix = "joincode:"
	// joinCodeTTL bounds stale entries for hangouts deleted outside the API.
	joinCodeTTL = 30 * 24 * time.Hour
)

// joinCodeCache implements adapter.JoinCodeCache on top of Redis.
type joinCodeCache struct {
	client *redis.Client
}

// NewJoinCodeCache creates a new join code cache instance.
func NewJoinCodeCache(client *redis.Client) adapter.JoinCodeCache {
	return &joinCodeCache{
		client: client,
	}
}

// Set stores the hangout ID under its join code.
func (c *joinCodeCache) Set(ctx context.Context, joinCode string, hangoutID uuid.UUID) error {
	return c.client.Set(ctx, joinCodeKeyPrefix+joinCode, hangoutID.String(), joinCodeTTL).Err()
}

// Get retrieves the hangout ID for a join code. A cache miss and a malformed
// cached value both report uuid.Nil without error so the caller falls back to
// the database.
func (c *joinCodeCache) Get(ctx context.Context, joinCode string) (uuid.UUID, error) {
	value, err := c.client.Get(ctx, joinCodeKeyPrefix+joinCode).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}

	hangoutID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, nil
	}
	return hangoutID, nil
}

// Delete removes a join code from the cache.
func (c *joinCodeCache) Delete(ctx context.Context, joinCode string) error {
	return c.client.Del(ctx, joinCodeKeyPrefix+joinCode).Err()
}
