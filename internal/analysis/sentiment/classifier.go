package sentiment

import "fmt"

// Polarity is the side of the AI debate a text leans to.
type Polarity string

const (
	Positive Polarity = "positive"
	Negative Polarity = "negative"
	Neutral  Polarity = "neutral"
)

// Valid reports whether p is one of the known polarities.
func (p Polarity) Valid() bool {
	switch p {
	case Positive, Negative, Neutral:
		return true
	default:
		return false
	}
}

// Score counts the distinct keywords of each side found in a text.
type Score struct {
	Positive     int      `json:"positive"`
	Negative     int      `json:"negative"`
	PositiveHits []string `json:"positiveHits,omitempty"`
	NegativeHits []string `json:"negativeHits,omitempty"`
}

// Decide returns the side with more hits, or Neutral on a tie.
func (s Score) Decide() Polarity {
	switch {
	case s.Positive > s.Negative:
		return Positive
	case s.Negative > s.Positive:
		return Negative
	default:
		return Neutral
	}
}

// DecideBinary never returns Neutral: ties resolve to tieBreak.
func (s Score) DecideBinary(tieBreak Polarity) Polarity {
	if p := s.Decide(); p != Neutral {
		return p
	}
	return tieBreak
}

// Classifier scores texts against one lexicon.
type Classifier struct {
	lexicon  Lexicon
	positive *Matcher
	negative *Matcher
}

// NewClassifier compiles both keyword sides of the lexicon.
func NewClassifier(lexicon Lexicon) (*Classifier, error) {
	positive, err := NewMatcher(lexicon.Positive)
	if err != nil {
		return nil, fmt.Errorf("build %s positive matcher: %w", lexicon.Name, err)
	}
	negative, err := NewMatcher(lexicon.Negative)
	if err != nil {
		return nil, fmt.Errorf("build %s negative matcher: %w", lexicon.Name, err)
	}
	return &Classifier{lexicon: lexicon, positive: positive, negative: negative}, nil
}

// MustClassifier is NewClassifier for the built-in lexicons.
func MustClassifier(lexicon Lexicon) *Classifier {
	c, err := NewClassifier(lexicon)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the lexicon name.
func (c *Classifier) Name() string {
	return c.lexicon.Name
}

// Score counts distinct positive and negative keywords in text.
func (c *Classifier) Score(text string) Score {
	pos := c.positive.Hits(text)
	neg := c.negative.Hits(text)
	return Score{
		Positive:     len(pos),
		Negative:     len(neg),
		PositiveHits: pos,
		NegativeHits: neg,
	}
}

// PositiveMatcher exposes the positive side, used to intercept and mask praise.
func (c *Classifier) PositiveMatcher() *Matcher {
	return c.positive
}

// NegativeMatcher exposes the negative side, used to intercept doubt.
func (c *Classifier) NegativeMatcher() *Matcher {
	return c.negative
}

// Set holds the compiled built-in lexicons.
type Set struct {
	MirrorEnglish       *Classifier
	PerspectiveInitial  *Classifier
	PerspectiveExtended *Classifier
	MirroringSystem     *Classifier
}

// NewSet compiles every built-in lexicon once.
func NewSet() (*Set, error) {
	mirror, err := NewClassifier(MirrorEnglish)
	if err != nil {
		return nil, err
	}
	initial, err := NewClassifier(PerspectiveInitial)
	if err != nil {
		return nil, err
	}
	extended, err := NewClassifier(PerspectiveExtended)
	if err != nil {
		return nil, err
	}
	system, err := NewClassifier(MirroringSystem)
	if err != nil {
		return nil, err
	}
	return &Set{
		MirrorEnglish:       mirror,
		PerspectiveInitial:  initial,
		PerspectiveExtended: extended,
		MirroringSystem:     system,
	}, nil
}

// ForLanguage picks the first-answer lexicon for the detected language.
func (s *Set) ForLanguage(lang Language) *Classifier {
	if lang == Korean {
		return s.PerspectiveInitial
	}
	return s.MirrorEnglish
}
