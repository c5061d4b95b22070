package person

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"parcours/internal/ports"
	"parcours/pkg/platform/circuit"
)

const personKeyPrefix = "parcours:person:"

// RedisCache decorates a directory with a read-through Redis cache. Cache
// errors degrade to a direct lookup; after repeated errors the breaker opens
// and reads skip Redis until write-backs succeed again.
type RedisCache struct {
	next    ports.PersonDirectory
	client  *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	breaker *circuit.Breaker
}

type CacheOption func(*RedisCache)

func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *RedisCache) { c.logger = logger }
}

func WithBreaker(b *circuit.Breaker) CacheOption {
	return func(c *RedisCache) { c.breaker = b }
}

func NewRedisCache(next ports.PersonDirectory, client *redis.Client, ttl time.Duration, opts ...CacheOption) *RedisCache {
	c := &RedisCache{
		next:    next,
		client:  client,
		ttl:     ttl,
		logger:  slog.Default(),
		breaker: circuit.New("person-cache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RedisCache) Get(ctx context.Context, matricule string) (*ports.Person, error) {
	key := personKeyPrefix + matricule
	if !c.breaker.IsOpen() {
		if p, ok := c.read(ctx, key); ok {
			return p, nil
		}
	}

	p, err := c.next.Get(ctx, matricule)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(p); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.failure(ctx, err)
		} else if _, change := c.breaker.RecordSuccess(); change.Closed {
			c.logger.InfoContext(ctx, "person cache recovered")
		}
	}
	return p, nil
}

func (c *RedisCache) read(ctx context.Context, key string) (*ports.Person, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		c.breaker.RecordSuccess()
		var p ports.Person
		if err := json.Unmarshal(raw, &p); err == nil {
			return &p, true
		}
		c.logger.WarnContext(ctx, "discarding undecodable cached person", "key", key)
	case errors.Is(err, redis.Nil):
		c.breaker.RecordSuccess()
	default:
		c.failure(ctx, err)
	}
	return nil, false
}

func (c *RedisCache) failure(ctx context.Context, err error) {
	c.logger.WarnContext(ctx, "person cache unavailable", "error", err)
	if _, change := c.breaker.RecordFailure(); change.Opened {
		c.logger.WarnContext(ctx, "person cache bypassed", "breaker", c.breaker.Name())
	}
}

// Invalidate drops a cached person.
func (c *RedisCache) Invalidate(ctx context.Context, matricule string) error {
	return c.client.Del(ctx, personKeyPrefix+matricule).Err()
}
