package video

import (
	"context"

	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

type videoListerSrv struct {
	repo port.VideoRepository
}

// compile-time check: *videoListerSrv must satisfy port.VideoLister
var _ port.VideoLister = (*videoListerSrv)(nil)

func NewVideoLister(repo port.VideoRepository) port.VideoLister {
	return &videoListerSrv{repo: repo}
}

func (s *videoListerSrv) ListCourseVideos(ctx context.Context, courseID uuid.UUID) ([]model.Video, error) {
	videos, err := s.repo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []model.Video{}
	}
	return videos, nil
}
