package sentiment

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Span is a half-open rune range [Start, End) of a keyword match in the original text.
type Span struct {
	Start int
	End   int
	Word  string
}

// Matcher finds keyword stems anywhere inside a text, ignoring letter case.
type Matcher struct {
	machine *goahocorasick.Machine
	size    int
}

// NewMatcher builds the Aho-Corasick automaton over the lowercased, de-duplicated keywords.
// An empty keyword list yields a matcher that never matches.
func NewMatcher(keywords []string) (*Matcher, error) {
	words := lo.Uniq(lo.FilterMap(keywords, func(word string, _ int) (string, bool) {
		lowered := string(lowerRunes([]rune(word)))
		return lowered, lowered != ""
	}))
	if len(words) == 0 {
		return &Matcher{}, nil
	}

	patterns := lo.Map(words, func(word string, _ int) []rune {
		return []rune(word)
	})

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Matcher{machine: m, size: len(words)}, nil
}

// MustMatcher is NewMatcher for package-level lexicons known to be valid.
func MustMatcher(keywords []string) *Matcher {
	m, err := NewMatcher(keywords)
	if err != nil {
		panic(err)
	}
	return m
}

// Len returns the number of distinct keywords.
func (m *Matcher) Len() int {
	return m.size
}

// Spans returns every keyword occurrence, overlapping ones included.
func (m *Matcher) Spans(text string) []Span {
	if m.machine == nil || text == "" {
		return nil
	}
	terms := m.machine.MultiPatternSearch(lowerRunes([]rune(text)), false)
	return lo.Map(terms, func(term *goahocorasick.Term, _ int) Span {
		return Span{Start: term.Pos, End: term.Pos + len(term.Word), Word: string(term.Word)}
	})
}

// Hits returns the distinct keywords present in text, in first-occurrence order.
func (m *Matcher) Hits(text string) []string {
	return lo.Uniq(lo.Map(m.Spans(text), func(s Span, _ int) string {
		return s.Word
	}))
}

// Contains reports whether any keyword occurs in text.
func (m *Matcher) Contains(text string) bool {
	if m.machine == nil || text == "" {
		return false
	}
	return len(m.machine.MultiPatternSearch(lowerRunes([]rune(text)), true)) > 0
}

// lowerRunes lowers rune by rune so match positions map one-to-one onto the original text.
func lowerRunes(in []rune) []rune {
	out := make([]rune, len(in))
	for i, r := range in {
		out[i] = unicode.ToLower(r)
	}
	return out
}
