package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/elearnhq/lessons-ms-go/internal/logger"
	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/usecase/translate"
	"github.com/elearnhq/lessons-ms-go/internal/validation"
)

type TranslateRequest struct {
	Text           string `json:"text" validate:"required,max=20000"`
	TargetLanguage string `json:"targetLanguage" validate:"required,max=50"`
}

type TranslateResponse struct {
	TranslatedText string `json:"translatedText"`
}

func TranslateHandler(svc port.DescriptionTranslator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TranslateRequest
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

		out, err := svc.TranslateDescription(r.Context(), port.TranslateInput(req))
		if err != nil {
			if errors.Is(err, translate.ErrValidation) {
				WriteError(w, http.StatusBadRequest, err.Error(), nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not translate text", err)
			return
		}

		RespondJSON(w, http.StatusOK, TranslateResponse{TranslatedText: out})
	}
}
