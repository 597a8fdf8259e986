package api

import (
	"net/http"

	"github.com/elearnhq/lessons-ms-go/internal/api_context"
	"github.com/elearnhq/lessons-ms-go/internal/logger"
	"github.com/elearnhq/lessons-ms-go/internal/port"
)

func ListVideosHandler(svc port.VideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courseID, ok := api_context.CourseIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "course ID is required", nil)
			return
		}

		videos, err := svc.ListCourseVideos(r.Context(), courseID)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list course videos", err)
			return
		}

		RespondJSON(w, http.StatusOK, videos)
		logger.Infof(r.Context(), "✅  Listed %d video(s) for course #%s", len(videos), courseID)
	}
}
