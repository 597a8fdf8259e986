package mock

import (
	"context"

	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

// VideoRepo implements repository operations for lesson records in tests.
type VideoRepo struct {
	VideoRecord *model.Video
	ListOut     []model.Video

	GetErr    error
	CreateErr error
	ListErr   error

	GetCalled  bool
	Created    *model.Video
	ListCalled bool
	ListCourse uuid.UUID
}

func (m *VideoRepo) Create(ctx context.Context, video *model.Video) error {
	m.Created = video
	return m.CreateErr
}

func (m *VideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.VideoRecord, nil
}

func (m *VideoRepo) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Video, error) {
	m.ListCalled = true
	m.ListCourse = courseID
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

// CourseRepo implements repository operations for courses in tests.
type CourseRepo struct {
	CourseRecord  *model.Course
	ByTitleRecord *model.Course
	ListOut       []model.Course

	GetErr       error
	GetTitleErr  error
	CreateErr    error
	ListErr      error
	UpdThumbErr  error
	UpdThumbURL  string
	UpdThumbID   uuid.UUID
	GetCalled    bool
	Created      *model.Course
	ListCalled   bool
	ThumbUpdated bool
}

func (m *CourseRepo) Create(ctx context.Context, course *model.Course) error {
	m.Created = course
	return m.CreateErr
}

func (m *CourseRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.CourseRecord, nil
}

func (m *CourseRepo) GetByTitle(ctx context.Context, title string) (*model.Course, error) {
	if m.GetTitleErr != nil {
		return nil, m.GetTitleErr
	}
	return m.ByTitleRecord, nil
}

func (m *CourseRepo) List(ctx context.Context) ([]model.Course, error) {
	m.ListCalled = true
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *CourseRepo) UpdateThumbnail(ctx context.Context, id uuid.UUID, thumbnailURL string) error {
	m.ThumbUpdated = true
	m.UpdThumbID = id
	m.UpdThumbURL = thumbnailURL
	return m.UpdThumbErr
}

// AdminRepo implements repository operations for admin accounts in tests.
type AdminRepo struct {
	AdminRecord   *model.Admin
	ByEmailRecord *model.Admin

	GetErr      error
	GetEmailErr error
	CreateErr   error
	TouchErr    error

	GetCalled   bool
	Created     *model.Admin
	TouchCalled bool
	TouchedID   uuid.UUID
}

func (m *AdminRepo) Create(ctx context.Context, admin *model.Admin) error {
	m.Created = admin
	return m.CreateErr
}

func (m *AdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.AdminRecord, nil
}

func (m *AdminRepo) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	if m.GetEmailErr != nil {
		return nil, m.GetEmailErr
	}
	return m.ByEmailRecord, nil
}

func (m *AdminRepo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	m.TouchCalled = true
	m.TouchedID = id
	return m.TouchErr
}
