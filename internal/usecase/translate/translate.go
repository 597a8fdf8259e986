package translate

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/elearnhq/lessons-ms-go/internal/port"
)

var ErrValidation = errors.New("validation failed")

type translatorSrv struct {
	translator port.Translator
	cache      port.Cache
}

// compile-time check: *translatorSrv must satisfy port.DescriptionTranslator
var _ port.DescriptionTranslator = (*translatorSrv)(nil)

// NewDescriptionTranslator fronts the translation capability with a bounded
// cache keyed by text digest and target language, so repeated translations
// of the same description cost one external call.
func NewDescriptionTranslator(translator port.Translator, cache port.Cache) port.DescriptionTranslator {
	return &translatorSrv{translator: translator, cache: cache}
}

func (s *translatorSrv) TranslateDescription(ctx context.Context, in port.TranslateInput) (string, error) {
	text := strings.TrimSpace(in.Text)
	lang := strings.TrimSpace(in.TargetLanguage)
	if text == "" {
		return "", fmt.Errorf("%w: text is required", ErrValidation)
	}
	if lang == "" {
		return "", fmt.Errorf("%w: a target language is required", ErrValidation)
	}

	key := cacheKey(text, lang)
	if cached, err := s.cache.GetTranslation(ctx, key); err != nil {
		log.Printf("translation cache lookup failed: %v", err)
	} else if cached != "" {
		return cached, nil
	}

	translated, err := s.translator.Translate(ctx, text, lang)
	if err != nil {
		return "", fmt.Errorf("translation to %q failed: %w", lang, err)
	}

	s.cache.SetTranslation(ctx, key, translated)
	return translated, nil
}

// cacheKey digests the text so arbitrary-length user input never becomes the
// cache key itself.
func cacheKey(text, lang string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%x:%s", sum, strings.ToLower(lang))
}
