package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/elearnhq/lessons-ms-go/internal/api_context"
	"github.com/elearnhq/lessons-ms-go/internal/logger"
	"github.com/elearnhq/lessons-ms-go/internal/port"
)

func GetCourseHandler(svc port.CourseGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.CourseIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "course ID is required", nil)
			return
		}

		out, err := svc.GetCourse(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				WriteError(w, http.StatusNotFound, "Course not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get course", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully returned course #%s", id)
	}
}

func ListCoursesHandler(svc port.CourseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := svc.ListCourses(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list courses", err)
			return
		}

		RespondJSON(w, http.StatusOK, courses)
		logger.Infof(r.Context(), "✅  Listed %d course(s)", len(courses))
	}
}
