package course

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/port"
)

type courseCreatorSrv struct {
	genID port.UUIDGen
	repo  port.CourseRepository
}

// compile-time check: *courseCreatorSrv must satisfy port.CourseCreator
var _ port.CourseCreator = (*courseCreatorSrv)(nil)

func NewCourseCreator(genID port.UUIDGen, repo port.CourseRepository) port.CourseCreator {
	return &courseCreatorSrv{genID: genID, repo: repo}
}

func (s *courseCreatorSrv) CreateCourse(ctx context.Context, in port.CreateCourseInput) (*model.Course, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: a title is required", ErrValidation)
	}
	switch in.Level {
	case model.CourseLevelBeginner, model.CourseLevelIntermediate, model.CourseLevelAdvanced:
	case "":
		in.Level = model.CourseLevelBeginner
	default:
		return nil, fmt.Errorf("%w: unknown level %q", ErrValidation, in.Level)
	}

	existing, err := s.repo.GetByTitle(ctx, in.Title)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateTitle
	}

	record := &model.Course{
		ID:          s.genID(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Level:       in.Level,
		IsPublished: true,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	log.Printf("course %q created with id #%s", record.Title, record.ID)
	return record, nil
}
