package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

type VideoRepository struct {
	db *sql.DB
}

// compile-time check: *VideoRepository must satisfy port.VideoRepository
var _ port.VideoRepository = (*VideoRepository)(nil)

func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	log.Printf("creating database record for video #%s in course #%s...", video.ID, video.CourseID)

	const query = `
      INSERT INTO videos
        (id, course_id, title, text_content, object_key, url, download_url, description_url, size_mb, duration_sec, resolutions, attachments, quiz, position)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		video.ID, video.CourseID, video.Title, video.TextContent,
		video.ObjectKey, video.URL, video.DownloadURL, video.DescriptionURL,
		video.SizeMB, video.DurationSec,
		video.Resolutions, video.Attachments, video.Quiz,
		video.Position,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	log.Printf("fetching video #%s from the database...", id)

	const query = `
      SELECT id, course_id, title, text_content, object_key, url, download_url, description_url, size_mb, duration_sec, resolutions, attachments, quiz, position, created_at
      FROM videos
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, id)
	var video model.Video
	if err := row.Scan(
		&video.ID, &video.CourseID, &video.Title, &video.TextContent,
		&video.ObjectKey, &video.URL, &video.DownloadURL, &video.DescriptionURL,
		&video.SizeMB, &video.DurationSec,
		&video.Resolutions, &video.Attachments, &video.Quiz,
		&video.Position, &video.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &video, nil
}

func (r *VideoRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Video, error) {
	log.Printf("listing videos of course #%s from the database...", courseID)

	const query = `
      SELECT id, course_id, title, text_content, object_key, url, download_url, description_url, size_mb, duration_sec, resolutions, attachments, quiz, position, created_at
      FROM videos
      WHERE course_id = ?
      ORDER BY position ASC, created_at ASC
    `
	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var videos []model.Video
	for rows.Next() {
		var video model.Video
		if err := rows.Scan(
			&video.ID, &video.CourseID, &video.Title, &video.TextContent,
			&video.ObjectKey, &video.URL, &video.DownloadURL, &video.DescriptionURL,
			&video.SizeMB, &video.DurationSec,
			&video.Resolutions, &video.Attachments, &video.Quiz,
			&video.Position, &video.CreatedAt,
		); err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return videos, nil
}
