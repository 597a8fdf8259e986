package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

// QuizQuestion is one multiple-choice question derived from a lesson transcript.
// CorrectAnswer is the index of the right option (0-3).
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Quiz is an ordered list of questions, stored as a JSON column.
type Quiz []QuizQuestion

func (q Quiz) Value() (driver.Value, error) { return jsonValue(q) }
func (q *Quiz) Scan(src interface{}) error  { return jsonScan(src, q) }

// Attachment is one supporting file uploaded alongside a lesson video.
type Attachment struct {
	FileID      string  `json:"file_id"`
	FileName    string  `json:"file_name"`
	FileURL     string  `json:"file_url"`
	DownloadURL string  `json:"download_url"`
	FileType    string  `json:"file_type"`
	SizeMB      float64 `json:"size_mb"`
	PageCount   int     `json:"page_count,omitempty"`
}

// Attachments is stored as a JSON column, order-preserving.
type Attachments []Attachment

func (a Attachments) Value() (driver.Value, error) { return jsonValue(a) }
func (a *Attachments) Scan(src interface{}) error  { return jsonScan(src, a) }

// Resolutions holds the three playback URLs derived from the canonical video
// URL. They are transform-parameter variants of one stored asset, not
// independently encoded files.
type Resolutions struct {
	Low    string `json:"low"`
	Medium string `json:"medium"`
	High   string `json:"high"`
}

func (r Resolutions) Value() (driver.Value, error) { return jsonValue(r) }
func (r *Resolutions) Scan(src interface{}) error  { return jsonScan(src, r) }

// Video is the persisted lesson record assembled by the ingestion pipeline.
type Video struct {
	ID             uuid.UUID   `json:"id"`
	CourseID       uuid.UUID   `json:"course_id"`
	Title          string      `json:"title"`
	TextContent    string      `json:"text_content"`
	ObjectKey      string      `json:"object_key"`
	URL            string      `json:"url"`
	DownloadURL    string      `json:"download_url"`
	DescriptionURL string      `json:"description_url"`
	SizeMB         float64     `json:"size_mb"`
	DurationSec    float64     `json:"duration_sec"`
	Resolutions    Resolutions `json:"resolutions"`
	Attachments    Attachments `json:"attachments"`
	Quiz           Quiz        `json:"quiz"`
	Position       int         `json:"position"`
	CreatedAt      time.Time   `json:"created_at"`
}

func jsonValue(v any) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func jsonScan(src interface{}, dest any) error {
	switch s := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(s) == 0 {
			return nil
		}
		return json.Unmarshal(s, dest)
	case string:
		if s == "" {
			return nil
		}
		return json.Unmarshal([]byte(s), dest)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", src)
	}
}
