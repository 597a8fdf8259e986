package mock

import (
	"context"

	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

// VideoGetter implements port.VideoGetter for tests.
type VideoGetter struct {
	Out    *port.GetVideoOutput
	Err    error
	Called bool
}

func (m *VideoGetter) GetVideo(ctx context.Context, id uuid.UUID) (*port.GetVideoOutput, error) {
	m.Called = true
	return m.Out, m.Err
}
