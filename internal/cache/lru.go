package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

// LRU is the in-memory fallback used when no redis address is configured.
// It holds at most cap entries across video details, etags and translations,
// evicting the least recently used entry when full.
type LRU struct {
	mu    sync.Mutex
	cap   int
	ll    *list.List
	items map[string]*list.Element
}

type lruEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

var _ port.Cache = (*LRU)(nil)

func NewLRU(capacity int) *LRU {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU{
		cap:   capacity,
		ll:    list.New(),
		items: make(map[string]*list.Element),
	}
}

func (c *LRU) GetVideoDetails(_ context.Context, id uuid.UUID) ([]byte, error) {
	return c.get(videoKey(id.String(), false)), nil
}

func (c *LRU) GetEtagVideoDetails(_ context.Context, id uuid.UUID) (string, error) {
	return string(c.get(videoKey(id.String(), true))), nil
}

func (c *LRU) SetVideoDetails(_ context.Context, id uuid.UUID, data []byte, validUntil time.Time) {
	c.set(videoKey(id.String(), false), data, validUntil)
}

func (c *LRU) SetEtagVideoDetails(_ context.Context, id uuid.UUID, etag string, validUntil time.Time) {
	c.set(videoKey(id.String(), true), []byte(etag), validUntil)
}

func (c *LRU) DeleteVideoDetails(_ context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range []string{videoKey(id.String(), false), videoKey(id.String(), true)} {
		if el, ok := c.items[key]; ok {
			c.ll.Remove(el)
			delete(c.items, key)
		}
	}
	return nil
}

func (c *LRU) GetTranslation(_ context.Context, key string) (string, error) {
	return string(c.get(translationKey(key))), nil
}

func (c *LRU) SetTranslation(_ context.Context, key, translated string) {
	c.set(translationKey(key), []byte(translated), time.Now().Add(translationTTL))
}

func (c *LRU) get(key string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil
	}
	entry := el.Value.(*lruEntry)
	if time.Now().After(entry.expiresAt) {
		c.ll.Remove(el)
		delete(c.items, key)
		return nil
	}
	c.ll.MoveToFront(el)
	return entry.value
}

func (c *LRU) set(key string, value []byte, expiresAt time.Time) {
	if !expiresAt.After(time.Now()) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.ll.MoveToFront(el)
		entry := el.Value.(*lruEntry)
		entry.value = value
		entry.expiresAt = expiresAt
		return
	}

	el := c.ll.PushFront(&lruEntry{key: key, value: value, expiresAt: expiresAt})
	c.items[key] = el

	if c.ll.Len() > c.cap {
		oldest := c.ll.Back()
		if oldest != nil {
			c.ll.Remove(oldest)
			delete(c.items, oldest.Value.(*lruEntry).key)
		}
	}
}
