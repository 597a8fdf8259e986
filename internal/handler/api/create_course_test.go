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
	"github.com/elearnhq/lessons-ms-go/internal/usecase/course"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

type stubCourses struct {
	created *model.Course
	got     *model.Course
	listed  []model.Course
	thumb   string
	err     error

	createdIn port.CreateCourseInput
	thumbFile port.UploadedFile
}

func (s *stubCourses) CreateCourse(ctx context.Context, in port.CreateCourseInput) (*model.Course, error) {
	s.createdIn = in
	return s.created, s.err
}
func (s *stubCourses) GetCourse(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	return s.got, s.err
}
func (s *stubCourses) ListCourses(ctx context.Context) ([]model.Course, error) {
	return s.listed, s.err
}
func (s *stubCourses) UploadThumbnail(ctx context.Context, courseID uuid.UUID, file port.UploadedFile) (string, error) {
	s.thumbFile = file
	return s.thumb, s.err
}

func postJSON(handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestCreateCourseHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &stubCourses{created: &model.Course{ID: uuid.NewUUID(), Title: "Go Basics"}}
		rr := postJSON(CreateCourseHandler(svc), "/courses",
			`{"title":"Go Basics","category":"programming","level":"beginner"}`)

		if rr.Code != http.StatusCreated {
			t.Fatalf("status = %d; want 201 (body %s)", rr.Code, rr.Body.String())
		}
		if svc.createdIn.Title != "Go Basics" || svc.createdIn.Level != "beginner" {
			t.Errorf("input = %+v", svc.createdIn)
		}
		if !strings.Contains(rr.Body.String(), "Go Basics") {
			t.Errorf("body = %q", rr.Body.String())
		}
	})

	t.Run("MissingTitle", func(t *testing.T) {
		svc := &stubCourses{}
		rr := postJSON(CreateCourseHandler(svc), "/courses", `{"category":"programming"}`)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status = %d; want 400", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "title") {
			t.Errorf("body should name the failing field, got %q", rr.Body.String())
		}
	})

	t.Run("UnknownLevel", func(t *testing.T) {
		rr := postJSON(CreateCourseHandler(&stubCourses{}), "/courses",
			`{"title":"Go Basics","level":"wizard"}`)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status = %d; want 400", rr.Code)
		}
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		rr := postJSON(CreateCourseHandler(&stubCourses{}), "/courses", `{"title":`)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status = %d; want 400", rr.Code)
		}
	})

	t.Run("DuplicateTitle", func(t *testing.T) {
		svc := &stubCourses{err: course.ErrDuplicateTitle}
		rr := postJSON(CreateCourseHandler(svc), "/courses", `{"title":"Go Basics"}`)

		if rr.Code != http.StatusConflict {
			t.Errorf("status = %d; want 409", rr.Code)
		}
	})
}

func TestGetCourseHandler(t *testing.T) {
	id := uuid.NewUUID()

	t.Run("Success", func(t *testing.T) {
		svc := &stubCourses{got: &model.Course{ID: id, Title: "Go Basics"}}
		req := httptest.NewRequest(http.MethodGet, "/courses/"+id.String(), nil)
		req = req.WithContext(context.WithValue(req.Context(), api_context.CourseIDKey, id))
		rr := httptest.NewRecorder()
		GetCourseHandler(svc).ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d; want 200", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "Go Basics") {
			t.Errorf("body = %q", rr.Body.String())
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := &stubCourses{err: sql.ErrNoRows}
		req := httptest.NewRequest(http.MethodGet, "/courses/"+id.String(), nil)
		req = req.WithContext(context.WithValue(req.Context(), api_context.CourseIDKey, id))
		rr := httptest.NewRecorder()
		GetCourseHandler(svc).ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Errorf("status = %d; want 404", rr.Code)
		}
	})

	t.Run("MissingContextID", func(t *testing.T) {
		rr := httptest.NewRecorder()
		GetCourseHandler(&stubCourses{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/courses/x", nil))

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status = %d; want 400", rr.Code)
		}
	})
}

func TestListCoursesHandler_EmptyIsArray(t *testing.T) {
	svc := &stubCourses{listed: []model.Course{}}
	rr := httptest.NewRecorder()
	ListCoursesHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/courses", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Errorf("body = %q; want empty JSON array", rr.Body.String())
	}
}
