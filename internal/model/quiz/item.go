package quiz

// Answer is the user's reply to a yes/no question.
type Answer string

const (
	Yes Answer = "yes"
	No  Answer = "no"
)

// Item is one asked question and, once answered, its reply.
type Item struct {
	Question   string  `json:"question" validate:"required"`
	UserAnswer *Answer `json:"userAnswer" validate:"omitempty,oneof=yes no"`
}

// Answered reports whether the user replied to the question.
func (i Item) Answered() bool {
	return i.UserAnswer != nil
}

// AnswerText renders the answer for prompts.
func (i Item) AnswerText() string {
	if i.UserAnswer == nil || *i.UserAnswer == "" {
		return "Waiting for answer"
	}
	return string(*i.UserAnswer)
}

// Tone is the perspective steering the generated questions.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)
