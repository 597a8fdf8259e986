package course

import (
	"context"

	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

type courseGetterSrv struct {
	repo port.CourseRepository
}

var _ port.CourseGetter = (*courseGetterSrv)(nil)

func NewCourseGetter(repo port.CourseRepository) port.CourseGetter {
	return &courseGetterSrv{repo: repo}
}

func (s *courseGetterSrv) GetCourse(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	return s.repo.GetByID(ctx, id)
}
