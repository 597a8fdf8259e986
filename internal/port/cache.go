package port

import (
	"context"
	"time"

	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

// Cache provides caching for video detail rendering and description
// translations. Implementations are bounded: redis-backed or an in-memory
// LRU with a fixed capacity.
type Cache interface {
	GetVideoDetails(ctx context.Context, id uuid.UUID) ([]byte, error)
	GetEtagVideoDetails(ctx context.Context, id uuid.UUID) (string, error)
	SetVideoDetails(ctx context.Context, id uuid.UUID, data []byte, validUntil time.Time)
	SetEtagVideoDetails(ctx context.Context, id uuid.UUID, etag string, validUntil time.Time)
	DeleteVideoDetails(ctx context.Context, id uuid.UUID) error

	GetTranslation(ctx context.Context, key string) (string, error)
	SetTranslation(ctx context.Context, key, translated string)
}
