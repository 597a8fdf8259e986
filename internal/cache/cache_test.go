package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

func makeTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	// spin up in-memory Redis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	// point the real client at it
	rdb := redis.NewClient(&redis.Options{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
	})
	return &Cache{client: rdb}, mr
}

func TestGetSetDeleteVideoDetails(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	id := uuid.NewUUID()
	payload := []byte(`{"id":"` + id.String() + `","title":"Intro"}`)
	validUntil := time.Now().Add(2 * time.Minute)

	// 1) Cache miss
	got, err := c.GetVideoDetails(ctx, id)
	if err != nil {
		t.Fatalf("GetVideoDetails miss: %v", err)
	}
	if got != nil {
		t.Errorf("GetVideoDetails miss: got %v; want nil", got)
	}

	// 2) Set + Get
	c.SetVideoDetails(ctx, id, payload, validUntil)
	c.SetEtagVideoDetails(ctx, id, "\"deadbeef\"", validUntil)
	// check TTL in Redis ≈ 2m
	if ttl := mr.TTL(videoKey(id.String(), false)); ttl < time.Minute || ttl > 2*time.Minute+time.Second {
		t.Errorf("redis TTL = %v; want ~2m", ttl)
	}
	if ttl := mr.TTL(videoKey(id.String(), true)); ttl < time.Minute || ttl > 2*time.Minute+time.Second {
		t.Errorf("etag TTL = %v; want ~2m", ttl)
	}
	got, err = c.GetVideoDetails(ctx, id)
	if err != nil {
		t.Fatalf("GetVideoDetails hit: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("GetVideoDetails = %q; want %q", got, payload)
	}
	etag, err := c.GetEtagVideoDetails(ctx, id)
	if err != nil {
		t.Fatalf("GetEtagVideoDetails: %v", err)
	}
	if etag != "\"deadbeef\"" {
		t.Errorf("GetEtagVideoDetails = %q; want %q", etag, "\"deadbeef\"")
	}

	// 3) Delete + miss again
	if err := c.DeleteVideoDetails(ctx, id); err != nil {
		t.Fatalf("DeleteVideoDetails: %v", err)
	}
	if got, _ := c.GetVideoDetails(ctx, id); got != nil {
		t.Errorf("after delete, GetVideoDetails = %v; want nil", got)
	}
	if etag, _ := c.GetEtagVideoDetails(ctx, id); etag != "" {
		t.Errorf("after delete, GetEtagVideoDetails = %q; want empty", etag)
	}
}

func TestGetVideoDetails_RedisError(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()
	id := uuid.NewUUID()

	// Simulate Redis unreachable
	mr.Close()

	got, err := c.GetVideoDetails(ctx, id)
	if got != nil {
		t.Errorf("Expected nil on Redis error, got %v", got)
	}
	if err == nil || !strings.Contains(err.Error(), "redis get failed") {
		t.Errorf("Expected redis get failed error, got %v", err)
	}
}

func TestDeleteVideoDetails_RedisError(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()
	id := uuid.NewUUID()

	mr.Close()

	err := c.DeleteVideoDetails(ctx, id)
	if err == nil || !strings.Contains(err.Error(), "redis del failed") {
		t.Errorf("Expected redis del failed error, got %v", err)
	}
}

func TestVideoKey_Etag(t *testing.T) {
	id := uuid.NewUUID().String()
	if got := videoKey(id, true); got != "video:etag:"+id {
		t.Errorf("videoKey(true) = %q; want %q", got, "video:etag:"+id)
	}
	if got := videoKey(id, false); got != "video:"+id {
		t.Errorf("videoKey() = %q; want %q", got, "video:"+id)
	}
}

func TestTranslations(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	// miss first
	if got, err := c.GetTranslation(ctx, "abc123:fr"); err != nil {
		t.Fatalf("initial miss err: %v", err)
	} else if got != "" {
		t.Errorf("expected empty string on miss, got %q", got)
	}

	c.SetTranslation(ctx, "abc123:fr", "Bonjour tout le monde")
	if ttl := mr.TTL(translationKey("abc123:fr")); ttl < 23*time.Hour || ttl > 24*time.Hour+time.Second {
		t.Errorf("translation TTL = %v; want ~24h", ttl)
	}

	got, err := c.GetTranslation(ctx, "abc123:fr")
	if err != nil {
		t.Fatalf("GetTranslation: %v", err)
	}
	if got != "Bonjour tout le monde" {
		t.Errorf("GetTranslation = %q; want %q", got, "Bonjour tout le monde")
	}

	mr.Close()
	if _, err := c.GetTranslation(ctx, "abc123:fr"); err == nil || !strings.Contains(err.Error(), "redis get failed") {
		t.Errorf("expected redis get failed error, got %v", err)
	}
}
