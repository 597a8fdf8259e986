package port

import (
	"context"

	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

// HTTPRenderer mediates between HTTP handlers and the video getter use case.
// It provides caching capabilities and returns both the JSON representation of
// the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	// RenderGetVideo returns the cached JSON result and its ETag if available
	// or executes the underlying use case and caches the output otherwise.
	RenderGetVideo(ctx context.Context, getter VideoGetter, id uuid.UUID) ([]byte, string, error)
}
