package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	guuid "github.com/google/uuid"

	"github.com/elearnhq/lessons-ms-go/internal/api_context"
	"github.com/elearnhq/lessons-ms-go/internal/handler/api"
	msuuid "github.com/elearnhq/lessons-ms-go/internal/uuid"
)

// WithCourseID parses the {courseID} route parameter and stashes it in the
// request context.
func WithCourseID() func(http.Handler) http.Handler {
	return withUUIDParam("courseID", api_context.CourseIDKey)
}

// WithVideoID parses the {videoID} route parameter and stashes it in the
// request context.
func WithVideoID() func(http.Handler) http.Handler {
	return withUUIDParam("videoID", api_context.VideoIDKey)
}

func withUUIDParam(param string, key any) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, param)
			if id == "" {
				api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("%s is required", param), nil)
				return
			}
			parsedID, err := guuid.Parse(id)
			if err != nil {
				api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("%s %q is not a valid UUID", param, id), nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), key, msuuid.UUID(parsedID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
