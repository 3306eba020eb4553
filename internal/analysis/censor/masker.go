package censor

import (
	"github.com/zhouzirui/mirror-lab/backend/internal/analysis/sentiment"
)

// DefaultMask is the rune drawn over censored words.
const DefaultMask = '█'

// Masker blacks out keyword matches while keeping every other rune, spacing included.
type Masker struct {
	matcher *sentiment.Matcher
	mask    rune
}

// NewMasker returns a Masker over the matcher's keywords.
func NewMasker(matcher *sentiment.Matcher, mask rune) *Masker {
	return &Masker{matcher: matcher, mask: mask}
}

// Mask replaces matched runes and reports the distinct words found.
func (m *Masker) Mask(original string) (string, []string) {
	spans := m.matcher.Spans(original)
	if len(spans) == 0 {
		return original, nil
	}

	runes := []rune(original)
	seen := make(map[string]struct{}, len(spans))
	words := make([]string, 0, len(spans))
	for _, span := range spans {
		if span.Start < 0 || span.End > len(runes) {
			continue
		}
		for i := span.Start; i < span.End; i++ {
			runes[i] = m.mask
		}
		if _, ok := seen[span.Word]; !ok {
			seen[span.Word] = struct{}{}
			words = append(words, span.Word)
		}
	}
	return string(runes), words
}
