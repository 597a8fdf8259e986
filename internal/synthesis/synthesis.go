package synthesis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/port"
)

// Sentinel texts returned instead of errors; the pipeline persists these
// rather than failing.
const (
	DescriptionEmptySentinel  = "No content available to generate description."
	DescriptionFailedSentinel = "Description could not be generated."
)

const descriptionPrompt = `You are an educational content assistant.

Based on the following video transcript, generate a clear and concise educational description in detail.

Focus on:
- Main topic
- Key concepts explained
- Learning outcome

Transcript:
%s`

const quizPrompt = `Based on the following educational transcript, generate 5 multiple choice questions.

Rules:
- Each question must have 4 options
- Only one correct answer
- Return ONLY JSON in this format:

[
  {
    "question": "...",
    "options": ["A", "B", "C", "D"],
    "correctAnswer": 0
  }
]

Transcript:
%s`

// TextGenerator is the slice of the generative client the synthesiser needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Synthesiser derives descriptions and quizzes from transcripts. Both
// operations are independent calls with no shared retry, each made at most
// once per pipeline run.
type Synthesiser struct {
	gen TextGenerator
}

// compile-time check: *Synthesiser must satisfy port.ContentSynthesiser
var _ port.ContentSynthesiser = (*Synthesiser)(nil)

func NewSynthesiser(gen TextGenerator) *Synthesiser {
	return &Synthesiser{gen: gen}
}

// GenerateDescription returns the generated description, or a fixed sentinel:
// blank transcripts short-circuit without an external call, faults degrade.
func (s *Synthesiser) GenerateDescription(ctx context.Context, transcript string) string {
	if strings.TrimSpace(transcript) == "" {
		return DescriptionEmptySentinel
	}

	text, err := s.gen.GenerateText(ctx, fmt.Sprintf(descriptionPrompt, transcript))
	if err != nil {
		log.Printf("synthesis: description generation failed: %v", err)
		return DescriptionFailedSentinel
	}
	return strings.TrimSpace(text)
}

// GenerateQuiz returns up to 5 parsed questions, or nil on a blank transcript,
// a provider fault or an unparseable response. The response may wrap the JSON
// array in prose; everything between the first '[' and the last ']' is parsed.
func (s *Synthesiser) GenerateQuiz(ctx context.Context, transcript string) model.Quiz {
	if strings.TrimSpace(transcript) == "" {
		return nil
	}

	text, err := s.gen.GenerateText(ctx, fmt.Sprintf(quizPrompt, transcript))
	if err != nil {
		log.Printf("synthesis: quiz generation failed: %v", err)
		return nil
	}

	quiz, err := parseQuiz(text)
	if err != nil {
		log.Printf("synthesis: quiz response unparseable: %v", err)
		return nil
	}
	return quiz
}

func parseQuiz(text string) (model.Quiz, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var quiz model.Quiz
	if err := json.Unmarshal([]byte(text[start:end+1]), &quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}
