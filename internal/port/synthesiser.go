package port

import (
	"context"

	"github.com/elearnhq/lessons-ms-go/internal/model"
)

// ContentSynthesiser derives a description and a quiz from a transcript via a
// generative-text capability. Both operations are fail-soft: they return a
// sentinel string or an empty quiz instead of an error.
type ContentSynthesiser interface {
	GenerateDescription(ctx context.Context, transcript string) string
	GenerateQuiz(ctx context.Context, transcript string) model.Quiz
}

// Translator translates a piece of description text to a target language.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}
