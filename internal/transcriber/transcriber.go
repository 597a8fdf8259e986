package transcriber

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/elearnhq/lessons-ms-go/internal/port"
)

const transcribePrompt = "Transcribe the spoken content from this audio accurately."

// AudioGenerator is the slice of the generative client the transcriber needs.
type AudioGenerator interface {
	GenerateWithAudio(ctx context.Context, prompt string, audio []byte, mimeType string) (string, error)
}

// Transcriber sends audio to the speech capability of the generative endpoint.
//
// Every fault — unreadable file, quota, network, malformed response — degrades
// to an empty transcript. Downstream synthesis depends on this to
// short-circuit instead of failing the whole ingestion.
type Transcriber struct {
	gen AudioGenerator
}

// compile-time check: *Transcriber must satisfy port.Transcriber
var _ port.Transcriber = (*Transcriber)(nil)

func NewTranscriber(gen AudioGenerator) *Transcriber {
	return &Transcriber{gen: gen}
}

func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) string {
	audio, err := os.ReadFile(audioPath)
	if err != nil {
		log.Printf("transcriber: could not read audio file %q: %v", audioPath, err)
		return ""
	}

	text, err := t.gen.GenerateWithAudio(ctx, transcribePrompt, audio, "audio/mp3")
	if err != nil {
		log.Printf("transcriber: transcription failed, continuing with empty transcript: %v", err)
		return ""
	}
	return strings.TrimSpace(text)
}
