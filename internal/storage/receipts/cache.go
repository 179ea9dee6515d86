package receipts

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xenking/pos-engine/internal/domain/snapshot"
)

type cacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// Cache is a read-through Redis cache in front of another snapshot store.
// Redis failures are logged and fall through to the backing store.
type Cache struct {
	rdb    cacheClient
	next   snapshot.Storage
	ttl    time.Duration
	prefix string
}

// NewRedisClient parses a redis:// URL and returns a client.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}
	return redis.NewClient(opts), nil
}

// NewCache wraps next with a Redis cache whose entries expire after ttl.
func NewCache(rdb cacheClient, next snapshot.Storage, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, next: next, ttl: ttl, prefix: "pos:receipt:"}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	switch {
	case err == nil:
		return data, nil
	case !errors.Is(err, redis.Nil):
		zctx.From(ctx).Warn("Receipt cache read failed", zap.String("key", key), zap.Error(err))
	}

	data, err = c.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, data)
	return data, nil
}

func (c *Cache) Put(ctx context.Context, key string, data []byte) error {
	if err := c.next.Put(ctx, key, data); err != nil {
		return err
	}
	c.set(ctx, key, data)
	return nil
}

func (c *Cache) set(ctx context.Context, key string, data []byte) {
	if err := c.rdb.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		zctx.From(ctx).Warn("Receipt cache write failed", zap.String("key", key), zap.Error(err))
	}
}
