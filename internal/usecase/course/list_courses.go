package course

import (
	"context"

	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/port"
)

type courseListerSrv struct {
	repo port.CourseRepository
}

var _ port.CourseLister = (*courseListerSrv)(nil)

func NewCourseLister(repo port.CourseRepository) port.CourseLister {
	return &courseListerSrv{repo: repo}
}

func (s *courseListerSrv) ListCourses(ctx context.Context) ([]model.Course, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}
