package mock

import (
	"context"

	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/port"
)

// AudioExtractor implements audio demuxing for tests.
type AudioExtractor struct {
	AudioOut    *port.StagedFile
	DurationOut float64

	ExtractErr error
	ProbeErr   error

	ExtractCalled bool
	ExtractedPath string
	ProbeCalled   bool
	ProbedPath    string
}

func (m *AudioExtractor) ExtractAudio(ctx context.Context, videoPath string) (*port.StagedFile, error) {
	m.ExtractCalled = true
	m.ExtractedPath = videoPath
	if m.ExtractErr != nil {
		return nil, m.ExtractErr
	}
	if m.AudioOut != nil {
		return m.AudioOut, nil
	}
	return &port.StagedFile{Path: "/tmp/staged/audio_extracted.mp3", Kind: port.StagedAudio}, nil
}

func (m *AudioExtractor) ProbeDuration(ctx context.Context, path string) (float64, error) {
	m.ProbeCalled = true
	m.ProbedPath = path
	if m.ProbeErr != nil {
		return 0, m.ProbeErr
	}
	return m.DurationOut, nil
}

// Transcriber implements transcription for tests.
type Transcriber struct {
	TranscriptOut string

	Called    bool
	AudioPath string
}

func (m *Transcriber) Transcribe(ctx context.Context, audioPath string) string {
	m.Called = true
	m.AudioPath = audioPath
	return m.TranscriptOut
}

// Synthesiser implements content synthesis for tests.
type Synthesiser struct {
	DescriptionOut string
	QuizOut        model.Quiz

	DescriptionCalled bool
	QuizCalled        bool
	GotTranscript     string
}

func (m *Synthesiser) GenerateDescription(ctx context.Context, transcript string) string {
	m.DescriptionCalled = true
	m.GotTranscript = transcript
	return m.DescriptionOut
}

func (m *Synthesiser) GenerateQuiz(ctx context.Context, transcript string) model.Quiz {
	m.QuizCalled = true
	return m.QuizOut
}

// Translator implements description translation for tests.
type Translator struct {
	Out string
	Err error

	Called    bool
	GotText   string
	GotTarget string
}

func (m *Translator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	m.Called = true
	m.GotText = text
	m.GotTarget = targetLanguage
	if m.Err != nil {
		return "", m.Err
	}
	return m.Out, nil
}
