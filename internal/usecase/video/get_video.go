package video

import (
	"context"
	"time"

	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

// detailsTTL bounds how long a rendered video detail payload may be served
// from cache.
const detailsTTL = time.Hour

type videoGetterSrv struct {
	repo port.VideoRepository
}

// compile-time check: *videoGetterSrv must satisfy port.VideoGetter
var _ port.VideoGetter = (*videoGetterSrv)(nil)

func NewVideoGetter(repo port.VideoRepository) port.VideoGetter {
	return &videoGetterSrv{repo: repo}
}

func (s *videoGetterSrv) GetVideo(ctx context.Context, id uuid.UUID) (*port.GetVideoOutput, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &port.GetVideoOutput{
		ValidUntil: time.Now().Add(detailsTTL),
		Video:      *record,
	}, nil
}
