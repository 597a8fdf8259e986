package api

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elearnhq/lessons-ms-go/internal/api_context"
	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/usecase/admin"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

type stubAdmins struct {
	auth    *port.AuthOutput
	profile *model.Admin
	err     error

	registerIn port.RegisterAdminInput
	loginIn    port.LoginAdminInput
}

func (s *stubAdmins) RegisterAdmin(ctx context.Context, in port.RegisterAdminInput) (*port.AuthOutput, error) {
	s.registerIn = in
	return s.auth, s.err
}
func (s *stubAdmins) LoginAdmin(ctx context.Context, in port.LoginAdminInput) (*port.AuthOutput, error) {
	s.loginIn = in
	return s.auth, s.err
}
func (s *stubAdmins) GetAdminProfile(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	return s.profile, s.err
}

func TestRegisterAdminHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &stubAdmins{auth: &port.AuthOutput{
			Token: "jwt-token",
			Admin: model.Admin{ID: uuid.NewUUID(), Email: "jo@example.com"},
		}}
		rr := postJSON(RegisterAdminHandler(svc), "/admins/register",
			`{"name":"Jo","email":"jo@example.com","password":"secret123","confirmPassword":"secret123"}`)

		if rr.Code != http.StatusCreated {
			t.Fatalf("status = %d; want 201 (body %s)", rr.Code, rr.Body.String())
		}
		if svc.registerIn.Email != "jo@example.com" {
			t.Errorf("input = %+v", svc.registerIn)
		}
		if !strings.Contains(rr.Body.String(), "jwt-token") {
			t.Errorf("body should carry the token, got %q", rr.Body.String())
		}
	})

	t.Run("ShortPassword", func(t *testing.T) {
		rr := postJSON(RegisterAdminHandler(&stubAdmins{}), "/admins/register",
			`{"name":"Jo","email":"jo@example.com","password":"short","confirmPassword":"short"}`)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status = %d; want 400", rr.Code)
		}
	})

	t.Run("BadEmail", func(t *testing.T) {
		rr := postJSON(RegisterAdminHandler(&stubAdmins{}), "/admins/register",
			`{"name":"Jo","email":"not-an-email","password":"secret123","confirmPassword":"secret123"}`)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status = %d; want 400", rr.Code)
		}
	})

	t.Run("EmailTaken", func(t *testing.T) {
		svc := &stubAdmins{err: admin.ErrEmailTaken}
		rr := postJSON(RegisterAdminHandler(svc), "/admins/register",
			`{"name":"Jo","email":"jo@example.com","password":"secret123","confirmPassword":"secret123"}`)

		if rr.Code != http.StatusConflict {
			t.Errorf("status = %d; want 409", rr.Code)
		}
	})
}

func TestLoginAdminHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &stubAdmins{auth: &port.AuthOutput{
			Token: "jwt-token",
			Admin: model.Admin{ID: uuid.NewUUID(), Email: "jo@example.com"},
		}}
		rr := postJSON(LoginAdminHandler(svc), "/admins/login",
			`{"email":"jo@example.com","password":"secret123"}`)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d; want 200 (body %s)", rr.Code, rr.Body.String())
		}
		if !strings.Contains(rr.Body.String(), "jwt-token") {
			t.Errorf("body = %q", rr.Body.String())
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc := &stubAdmins{err: admin.ErrInvalidCredentials}
		rr := postJSON(LoginAdminHandler(svc), "/admins/login",
			`{"email":"jo@example.com","password":"wrong"}`)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status = %d; want 401", rr.Code)
		}
	})

	t.Run("InactiveAccount", func(t *testing.T) {
		svc := &stubAdmins{err: admin.ErrAccountInactive}
		rr := postJSON(LoginAdminHandler(svc), "/admins/login",
			`{"email":"jo@example.com","password":"secret123"}`)

		if rr.Code != http.StatusForbidden {
			t.Errorf("status = %d; want 403", rr.Code)
		}
	})
}

func TestAdminProfileHandler(t *testing.T) {
	id := uuid.NewUUID()

	t.Run("Success", func(t *testing.T) {
		svc := &stubAdmins{profile: &model.Admin{ID: id, Email: "jo@example.com"}}
		req := httptest.NewRequest(http.MethodGet, "/admins/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), api_context.AuthAdminIDKey, id))
		rr := httptest.NewRecorder()
		AdminProfileHandler(svc).ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d; want 200", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "jo@example.com") {
			t.Errorf("body = %q", rr.Body.String())
		}
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		AdminProfileHandler(&stubAdmins{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admins/me", nil))

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status = %d; want 401", rr.Code)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := &stubAdmins{err: sql.ErrNoRows}
		req := httptest.NewRequest(http.MethodGet, "/admins/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), api_context.AuthAdminIDKey, id))
		rr := httptest.NewRecorder()
		AdminProfileHandler(svc).ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Errorf("status = %d; want 404", rr.Code)
		}
	})
}
