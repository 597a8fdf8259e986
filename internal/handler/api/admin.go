package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/elearnhq/lessons-ms-go/internal/api_context"
	"github.com/elearnhq/lessons-ms-go/internal/logger"
	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/usecase/admin"
	"github.com/elearnhq/lessons-ms-go/internal/validation"
)

type RegisterAdminRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Phone           string `json:"phone" validate:"max=30"`
}

func RegisterAdminHandler(svc port.AdminRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterAdminRequest
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

		out, err := svc.RegisterAdmin(r.Context(), port.RegisterAdminInput(req))
		if err != nil {
			switch {
			case errors.Is(err, admin.ErrValidation):
				WriteError(w, http.StatusBadRequest, err.Error(), nil)
			case errors.Is(err, admin.ErrEmailTaken):
				WriteError(w, http.StatusConflict, err.Error(), nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not register admin", err)
			}
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully registered admin #%s", out.Admin.ID)
	}
}

type LoginAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func LoginAdminHandler(svc port.AdminAuthenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginAdminRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		out, err := svc.LoginAdmin(r.Context(), port.LoginAdminInput(req))
		if err != nil {
			switch {
			case errors.Is(err, admin.ErrInvalidCredentials):
				WriteError(w, http.StatusUnauthorized, err.Error(), nil)
			case errors.Is(err, admin.ErrAccountInactive):
				WriteError(w, http.StatusForbidden, err.Error(), nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not log in", err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Admin #%s logged in", out.Admin.ID)
	}
}

func AdminProfileHandler(svc port.AdminProfiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.AuthAdminIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		out, err := svc.GetAdminProfile(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				WriteError(w, http.StatusNotFound, "Admin not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get profile", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
	}
}
