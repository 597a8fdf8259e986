package api_context

import (
	"context"

	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

type ctxKey string

const (
	CourseIDKey       ctxKey = "courseID"
	VideoIDKey        ctxKey = "videoID"
	AuthAdminIDKey    ctxKey = "authAdminID"
	AuthAdminEmailKey ctxKey = "authAdminEmail"
)

func CourseIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(CourseIDKey).(uuid.UUID)
	return id, ok
}

func VideoIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(VideoIDKey).(uuid.UUID)
	return id, ok
}

func AuthAdminIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(AuthAdminIDKey).(uuid.UUID)
	return id, ok
}

func AuthAdminEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(AuthAdminEmailKey).(string)
	return email, ok
}
