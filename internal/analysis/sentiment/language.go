package sentiment

import (
	"unicode"

	"github.com/abadojack/whatlanggo"
)

// Language is the coarse language family used to choose a lexicon.
type Language string

const (
	English Language = "en"
	Korean  Language = "ko"
)

// DetectLanguage treats Hangul text as Korean and everything else as English. Script detection
// is used instead of the language guess since one-word answers are common.
func DetectLanguage(text string) Language {
	if text == "" {
		return English
	}
	if whatlanggo.DetectScript(text) == unicode.Hangul {
		return Korean
	}
	info := whatlanggo.Detect(text)
	if info.Lang == whatlanggo.Kor {
		return Korean
	}
	return English
}
