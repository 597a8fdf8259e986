package api

import (
	"database/sql"
	"errors"
	"io"
	"net/http"

	"github.com/elearnhq/lessons-ms-go/internal/api_context"
	"github.com/elearnhq/lessons-ms-go/internal/logger"
	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/usecase/course"
)

type UploadThumbnailResponse struct {
	ThumbnailURL string `json:"thumbnail_url"`
}

func UploadThumbnailHandler(svc port.ThumbnailUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courseID, ok := api_context.CourseIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "course ID is required", nil)
			return
		}

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid multipart request", err)
			return
		}
		file, header, err := r.FormFile("thumbnail")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "a thumbnail file is required", nil)
			return
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(file)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Could not read thumbnail upload", err)
			return
		}

		url, err := svc.UploadThumbnail(r.Context(), courseID, port.UploadedFile{Name: header.Filename, Data: data})
		if err != nil {
			switch {
			case errors.Is(err, course.ErrValidation):
				WriteError(w, http.StatusBadRequest, err.Error(), nil)
			case errors.Is(err, sql.ErrNoRows):
				WriteError(w, http.StatusNotFound, "Course not found", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not upload thumbnail", err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, UploadThumbnailResponse{ThumbnailURL: url})
		logger.Infof(r.Context(), "✅  Successfully updated thumbnail for course #%s", courseID)
	}
}
