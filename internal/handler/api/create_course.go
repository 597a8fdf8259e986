package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/elearnhq/lessons-ms-go/internal/logger"
	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/usecase/course"
	"github.com/elearnhq/lessons-ms-go/internal/validation"
)

type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Category    string `json:"category" validate:"max=100"`
	Level       string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

func CreateCourseHandler(svc port.CourseCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCourseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		out, err := svc.CreateCourse(r.Context(), port.CreateCourseInput(req))
		if err != nil {
			switch {
			case errors.Is(err, course.ErrValidation):
				WriteError(w, http.StatusBadRequest, err.Error(), nil)
			case errors.Is(err, course.ErrDuplicateTitle):
				WriteError(w, http.StatusConflict, err.Error(), nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not create course", err)
			}
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully created course #%s", out.ID)
	}
}
