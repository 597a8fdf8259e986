package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/elearnhq/lessons-ms-go/internal/api_context"
	"github.com/elearnhq/lessons-ms-go/internal/logger"
	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/usecase/video"
)

// maxUploadMemory caps how much of the multipart body is held in memory;
// the rest spills to temp files managed by net/http.
const maxUploadMemory = 32 << 20

type UploadVideoResponse struct {
	Message string      `json:"message"`
	Video   model.Video `json:"video"`
}

func UploadVideoHandler(svc port.VideoIngester) http.HandlerFunc {
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

		position := 1
		if raw := r.FormValue("position"); raw != "" {
			p, err := strconv.Atoi(raw)
			if err != nil || p < 1 {
				WriteError(w, http.StatusBadRequest, fmt.Sprintf("position %q must be a positive integer", raw), nil)
				return
			}
			position = p
		}

		in := port.IngestVideoInput{
			CourseID:    courseID,
			Title:       r.FormValue("title"),
			TextContent: r.FormValue("textContent"),
			Position:    position,
		}

		if file, header, err := r.FormFile("video"); err == nil {
			data, readErr := readPart(file, header)
			if readErr != nil {
				WriteError(w, http.StatusBadRequest, "Could not read video upload", readErr)
				return
			}
			in.Video = data
		}

		for _, header := range r.MultipartForm.File["attachments"] {
			file, err := header.Open()
			if err != nil {
				WriteError(w, http.StatusBadRequest, fmt.Sprintf("Could not open attachment %q", header.Filename), err)
				return
			}
			data, readErr := readPart(file, header)
			if readErr != nil {
				WriteError(w, http.StatusBadRequest, fmt.Sprintf("Could not read attachment %q", header.Filename), readErr)
				return
			}
			in.Attachments = append(in.Attachments, *data)
		}

		record, err := svc.IngestVideo(r.Context(), in)
		if err != nil {
			if errors.Is(err, video.ErrValidation) {
				WriteError(w, http.StatusBadRequest, err.Error(), nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Video ingestion failed", err)
			return
		}

		RespondJSON(w, http.StatusCreated, UploadVideoResponse{
			Message: "Video uploaded and processed successfully",
			Video:   *record,
		})
		logger.Infof(r.Context(), "✅  Successfully ingested video #%s", record.ID)
	}
}

func readPart(file multipart.File, header *multipart.FileHeader) (*port.UploadedFile, error) {
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &port.UploadedFile{Name: header.Filename, Data: data}, nil
}
