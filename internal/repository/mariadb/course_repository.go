package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

type CourseRepository struct {
	db *sql.DB
}

// compile-time check: *CourseRepository must satisfy port.CourseRepository
var _ port.CourseRepository = (*CourseRepository)(nil)

func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	log.Printf("creating database record for course %q...", course.Title)

	const query = `
      INSERT INTO courses
        (id, title, description, category, level, thumbnail_url, is_published)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		course.ID, course.Title, course.Description,
		course.Category, course.Level, course.ThumbnailURL,
		course.IsPublished,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	log.Printf("fetching course #%s from the database...", id)

	const query = courseSelect + ` WHERE c.id = ? GROUP BY c.id`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *CourseRepository) GetByTitle(ctx context.Context, title string) (*model.Course, error) {
	const query = courseSelect + ` WHERE c.title = ? GROUP BY c.id`
	return r.scanOne(r.db.QueryRowContext(ctx, query, title))
}

func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	log.Println("listing courses from the database...")

	const query = courseSelect + ` GROUP BY c.id ORDER BY c.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var courses []model.Course
	for rows.Next() {
		var course model.Course
		if err := scanCourse(rows, &course); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *CourseRepository) UpdateThumbnail(ctx context.Context, id uuid.UUID, thumbnailURL string) error {
	log.Printf("updating thumbnail for course #%s...", id)

	const query = `UPDATE courses SET thumbnail_url = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, thumbnailURL, id)
	return err
}

// courseSelect joins the videos table so listings carry aggregate lesson
// counts and total duration without a second round-trip.
const courseSelect = `
  SELECT c.id, c.title, c.description, c.category, c.level, c.thumbnail_url,
         COUNT(v.id), COALESCE(SUM(v.duration_sec), 0),
         c.is_published, c.created_at, c.updated_at
  FROM courses c
  LEFT JOIN videos v ON v.course_id = c.id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *CourseRepository) scanOne(row rowScanner) (*model.Course, error) {
	var course model.Course
	if err := scanCourse(row, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func scanCourse(row rowScanner, course *model.Course) error {
	return row.Scan(
		&course.ID, &course.Title, &course.Description,
		&course.Category, &course.Level, &course.ThumbnailURL,
		&course.TotalVideos, &course.TotalDuration,
		&course.IsPublished, &course.CreatedAt, &course.UpdatedAt,
	)
}
