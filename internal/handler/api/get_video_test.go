package api

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elearnhq/lessons-ms-go/internal/api_context"
	"github.com/elearnhq/lessons-ms-go/internal/mock"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

func requestWithVideoID(id uuid.UUID) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/videos/"+id.String(), nil)
	ctx := context.WithValue(req.Context(), api_context.VideoIDKey, id)
	return req.WithContext(ctx)
}

func TestGetVideoHandler_Success(t *testing.T) {
	id := uuid.NewUUID()
	renderer := &mock.HTTPRenderer{Data: []byte(`{"video":{"title":"Intro"}}`), Etag: "\"abcd1234\""}
	handler := GetVideoHandler(renderer, &mock.VideoGetter{})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithVideoID(id))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rr.Code)
	}
	if got := rr.Header().Get("ETag"); got != "\"abcd1234\"" {
		t.Errorf("ETag = %q", got)
	}
	if got := rr.Header().Get("Cache-Control"); !strings.Contains(got, "max-age=300") {
		t.Errorf("Cache-Control = %q", got)
	}
	if !strings.Contains(rr.Body.String(), "Intro") {
		t.Errorf("body = %q", rr.Body.String())
	}
	if renderer.ID != id {
		t.Errorf("renderer got id %s; want %s", renderer.ID, id)
	}
}

func TestGetVideoHandler_NotModified(t *testing.T) {
	renderer := &mock.HTTPRenderer{Data: []byte(`{}`), Etag: "\"abcd1234\""}
	handler := GetVideoHandler(renderer, &mock.VideoGetter{})

	req := requestWithVideoID(uuid.NewUUID())
	req.Header.Set("If-None-Match", "\"abcd1234\"")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotModified {
		t.Errorf("status = %d; want 304", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("body should be empty on 304, got %q", rr.Body.String())
	}
}

func TestGetVideoHandler_NotFound(t *testing.T) {
	renderer := &mock.HTTPRenderer{Err: sql.ErrNoRows}
	handler := GetVideoHandler(renderer, &mock.VideoGetter{})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithVideoID(uuid.NewUUID()))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rr.Code)
	}
}

func TestGetVideoHandler_MissingContextID(t *testing.T) {
	handler := GetVideoHandler(&mock.HTTPRenderer{}, &mock.VideoGetter{})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/videos/x", nil))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rr.Code)
	}
}
