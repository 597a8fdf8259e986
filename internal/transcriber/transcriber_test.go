package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type mockGen struct {
	out    string
	err    error
	called bool
	audio  []byte
	mime   string
}

func (m *mockGen) GenerateWithAudio(ctx context.Context, prompt string, audio []byte, mimeType string) (string, error) {
	m.called = true
	m.audio = audio
	m.mime = mimeType
	return m.out, m.err
}

func writeAudio(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio.mp3")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write audio: %v", err)
	}
	return path
}

func TestTranscribe_ReturnsTrimmedTranscript(t *testing.T) {
	gen := &mockGen{out: "  Hello world \n"}
	tr := NewTranscriber(gen)

	got := tr.Transcribe(context.Background(), writeAudio(t, []byte("mp3data")))
	if got != "Hello world" {
		t.Errorf("expected %q, got %q", "Hello world", got)
	}
	if string(gen.audio) != "mp3data" {
		t.Errorf("expected audio bytes forwarded, got %q", gen.audio)
	}
	if gen.mime != "audio/mp3" {
		t.Errorf("expected audio/mp3 mime, got %q", gen.mime)
	}
}

func TestTranscribe_ProviderFailureDegradesToEmpty(t *testing.T) {
	gen := &mockGen{err: errors.New("quota exceeded")}
	tr := NewTranscriber(gen)

	if got := tr.Transcribe(context.Background(), writeAudio(t, []byte("x"))); got != "" {
		t.Errorf("expected empty transcript, got %q", got)
	}
}

func TestTranscribe_MissingFileDegradesToEmpty(t *testing.T) {
	gen := &mockGen{out: "should not be used"}
	tr := NewTranscriber(gen)

	got := tr.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"))
	if got != "" {
		t.Errorf("expected empty transcript, got %q", got)
	}
	if gen.called {
		t.Error("expected no provider call when the audio file is unreadable")
	}
}
