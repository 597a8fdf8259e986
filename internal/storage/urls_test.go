package storage

import (
	"strings"
	"testing"
)

func TestDeriveResolutions_Deterministic(t *testing.T) {
	canonical := "https://cdn.example.com/videos/lesson.mp4"

	first := DeriveResolutions(canonical)
	second := DeriveResolutions(canonical)
	if first != second {
		t.Errorf("expected identical output for identical input:\n%+v\n%+v", first, second)
	}
}

func TestDeriveResolutions_ThreeVariants(t *testing.T) {
	res := DeriveResolutions("https://cdn.example.com/videos/lesson.mp4")

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"low", res.Low, "tr=w-426,h-240"},
		{"medium", res.Medium, "tr=w-640,h-360"},
		{"high", res.High, "tr=w-1280,h-720"},
	}
	for _, tc := range tests {
		if tc.url == "" {
			t.Errorf("%s: missing URL", tc.name)
			continue
		}
		if !strings.HasPrefix(tc.url, "https://cdn.example.com/videos/lesson.mp4?") {
			t.Errorf("%s: variant should extend the canonical URL, got %q", tc.name, tc.url)
		}
		if !strings.Contains(tc.url, tc.want) {
			t.Errorf("%s: expected transform %q in %q", tc.name, tc.want, tc.url)
		}
	}
}

func TestDeriveResolutions_CanonicalWithExistingQuery(t *testing.T) {
	res := DeriveResolutions("https://cdn.example.com/v.mp4?v=2")
	if !strings.Contains(res.Low, "?v=2&tr=") {
		t.Errorf("expected & separator when canonical already has a query, got %q", res.Low)
	}
}

func TestDownloadURL(t *testing.T) {
	got := DownloadURL("https://cdn.example.com/videos/lesson.mp4")
	want := "https://cdn.example.com/videos/lesson.mp4?response-content-disposition=attachment"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
