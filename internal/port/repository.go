package port

import (
	"context"

	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

// VideoRepository defines persistence operations for lesson records.
type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Video, error)
}

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error)
	GetByTitle(ctx context.Context, title string) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	UpdateThumbnail(ctx context.Context, id uuid.UUID, thumbnailURL string) error
}

// AdminRepository defines persistence operations for admin accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}
