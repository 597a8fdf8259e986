package synthesis

import (
	"context"
	"fmt"
	"strings"

	"github.com/elearnhq/lessons-ms-go/internal/port"
)

const translatePrompt = `Translate the following text to %s.
Return ONLY the translated text, without explanations or quotes.

Text:
%s`

// Translator turns description text into a target language through the same
// generative capability the synthesiser uses. Unlike synthesis it propagates
// faults: the caller decides whether a failed translation matters.
type Translator struct {
	gen TextGenerator
}

var _ port.Translator = (*Translator)(nil)

func NewTranslator(gen TextGenerator) *Translator {
	return &Translator{gen: gen}
}

func (t *Translator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	out, err := t.gen.GenerateText(ctx, fmt.Sprintf(translatePrompt, targetLanguage, text))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
