package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

const translationTTL = 24 * time.Hour

// Cache is the redis-backed implementation used when REDIS_ADDR is set.
type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetVideoDetails(ctx context.Context, id uuid.UUID) ([]byte, error) {
	val, err := c.client.Get(ctx, videoKey(id.String(), false)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagVideoDetails(ctx context.Context, id uuid.UUID) (string, error) {
	val, err := c.client.Get(ctx, videoKey(id.String(), true)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetVideoDetails(ctx context.Context, id uuid.UUID, data []byte, validUntil time.Time) {
	log.Printf("creating cache entry for video #%s, valid until %s...", id, validUntil.Format(time.RFC1123))

	if err := c.client.Set(ctx, videoKey(id.String(), false), data, time.Until(validUntil)).Err(); err != nil {
		log.Printf("redis set failed for video #%s: %v", id, err)
	}
}

func (c *Cache) SetEtagVideoDetails(ctx context.Context, id uuid.UUID, etag string, validUntil time.Time) {
	if err := c.client.Set(ctx, videoKey(id.String(), true), etag, time.Until(validUntil)).Err(); err != nil {
		log.Printf("redis set failed for video #%s etag: %v", id, err)
	}
}

func (c *Cache) DeleteVideoDetails(ctx context.Context, id uuid.UUID) error {
	log.Printf("deleting cache entry for video #%s...", id)

	if err := c.client.Del(ctx, videoKey(id.String(), false), videoKey(id.String(), true)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) GetTranslation(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, translationKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetTranslation(ctx context.Context, key, translated string) {
	if err := c.client.Set(ctx, translationKey(key), translated, translationTTL).Err(); err != nil {
		log.Printf("redis set failed for translation %q: %v", key, err)
	}
}

func videoKey(id string, etag bool) string {
	if etag {
		return "video:etag:" + id
	}
	return "video:" + id
}

func translationKey(key string) string {
	return "translation:" + key
}
