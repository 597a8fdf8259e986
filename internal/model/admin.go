package model

import (
	"time"

	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

// Admin is a back-office account allowed to create courses and ingest videos.
// PasswordHash is a bcrypt digest, never serialised to JSON.
type Admin struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Phone        string     `json:"phone,omitempty"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
