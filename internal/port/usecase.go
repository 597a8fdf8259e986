package port

import (
	"context"
	"time"

	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

type UUIDGen func() uuid.UUID

// UploadedFile is one binary part of a multipart submission.
type UploadedFile struct {
	Name string
	Data []byte
}

// VideoIngester runs the full ingestion pipeline for one uploaded lesson
// video and returns the persisted record.
type VideoIngester interface {
	IngestVideo(ctx context.Context, in IngestVideoInput) (*model.Video, error)
}
type IngestVideoInput struct {
	CourseID    uuid.UUID
	Title       string
	TextContent string
	Position    int
	Video       *UploadedFile
	Attachments []UploadedFile
}

// VideoGetter retrieves one lesson record.
type VideoGetter interface {
	GetVideo(ctx context.Context, id uuid.UUID) (*GetVideoOutput, error)
}
type GetVideoOutput struct {
	ValidUntil time.Time   `json:"valid_until"`
	Video      model.Video `json:"video"`
}

// VideoLister lists the lesson records of one course, in lesson order.
type VideoLister interface {
	ListCourseVideos(ctx context.Context, courseID uuid.UUID) ([]model.Video, error)
}

// CourseCreator creates a new course.
type CourseCreator interface {
	CreateCourse(ctx context.Context, in CreateCourseInput) (*model.Course, error)
}
type CreateCourseInput struct {
	Title       string
	Description string
	Category    string
	Level       string
}

// CourseGetter retrieves one course.
type CourseGetter interface {
	GetCourse(ctx context.Context, id uuid.UUID) (*model.Course, error)
}

// CourseLister lists all courses, newest first.
type CourseLister interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
}

// ThumbnailUploader stores a course thumbnail image and returns its URL.
type ThumbnailUploader interface {
	UploadThumbnail(ctx context.Context, courseID uuid.UUID, file UploadedFile) (string, error)
}

// AdminRegistrar creates admin accounts.
type AdminRegistrar interface {
	RegisterAdmin(ctx context.Context, in RegisterAdminInput) (*AuthOutput, error)
}
type RegisterAdminInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
}

// AdminAuthenticator verifies credentials and issues tokens.
type AdminAuthenticator interface {
	LoginAdmin(ctx context.Context, in LoginAdminInput) (*AuthOutput, error)
}
type LoginAdminInput struct {
	Email    string
	Password string
}
type AuthOutput struct {
	Token string      `json:"token"`
	Admin model.Admin `json:"admin"`
}

// AdminProfiler loads the authenticated admin's profile.
type AdminProfiler interface {
	GetAdminProfile(ctx context.Context, id uuid.UUID) (*model.Admin, error)
}

// DescriptionTranslator translates lesson description text, fronted by a
// bounded cache collaborator.
type DescriptionTranslator interface {
	TranslateDescription(ctx context.Context, in TranslateInput) (string, error)
}
type TranslateInput struct {
	Text           string
	TargetLanguage string
}
