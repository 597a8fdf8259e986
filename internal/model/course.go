package model

import (
	"time"

	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

const (
	CourseLevelBeginner     = "beginner"
	CourseLevelIntermediate = "intermediate"
	CourseLevelAdvanced     = "advanced"
)

// Course groups lesson videos under one curriculum entry.
type Course struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Level         string    `json:"level"`
	ThumbnailURL  string    `json:"thumbnail_url"`
	TotalVideos   int       `json:"total_videos"`
	TotalDuration float64   `json:"total_duration"`
	IsPublished   bool      `json:"is_published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
