package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/beka-birhanu/vinom-treasure/service/i"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "hunt"
	cacheKeyFmt   = "%s:cache:%s"
)

// RedisHuntCache stores finished hunts as JSON strings with a TTL.
type RedisHuntCache struct {
	client *redis.Client
	prefix string
}

// NewRedisHuntCache creates a cache whose keys start with prefix.
func NewRedisHuntCache(client *redis.Client, prefix string) (i.HuntCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &RedisHuntCache{client: client, prefix: prefix}, nil
}

func (c *RedisHuntCache) key(fingerprint string) string {
	return fmt.Sprintf(cacheKeyFmt, c.prefix, fingerprint)
}

// Get reports false when nothing is cached for fingerprint.
func (c *RedisHuntCache) Get(ctx context.Context, fingerprint string) (*dmn.Hunt, bool, error) {
	raw, err := c.client.Get(ctx, c.key(fingerprint)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var hunt dmn.Hunt
	if err := json.Unmarshal(raw, &hunt); err != nil {
		return nil, false, fmt.Errorf("decoding cached hunt: %w", err)
	}
	return &hunt, true, nil
}

// Set caches hunt under fingerprint for ttl.
func (c *RedisHuntCache) Set(ctx context.Context, fingerprint string, hunt *dmn.Hunt, ttl time.Duration) error {
	raw, err := json.Marshal(hunt)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(fingerprint), raw, ttl).Err()
}
