package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/zhouzirui/mirror-lab/backend/internal/model/quiz"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/ai"
)

// FallbackQuestion is asked when the model returns nothing usable.
const FallbackQuestion = "Do you think AI will continue to evolve rapidly?"

const nextQuestionQuery = "Please generate the next AI-related question."

// NextQuestionReply carries the generated question and the tone that steered it.
type NextQuestionReply struct {
	NextQuestion string    `json:"nextQuestion"`
	Tone         quiz.Tone `json:"tone"`
}

// Level is the preference bucket reached by a share of yes answers.
type Level struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// Theme 根据回答倾向决定页面明暗。
type Theme string

const (
	ThemeLight   Theme = "light"
	ThemeDark    Theme = "dark"
	ThemeNeutral Theme = "neutral"
)

// Summary is the result screen of a finished quiz.
type Summary struct {
	Total         int     `json:"total"`
	Answered      int     `json:"answered"`
	YesCount      int     `json:"yesCount"`
	NoCount       int     `json:"noCount"`
	YesPercentage float64 `json:"yesPercentage"`
	NoPercentage  float64 `json:"noPercentage"`
	Level         Level   `json:"level"`
	Theme         Theme   `json:"theme"`
	Completed     bool    `json:"completed"`
}

var levels = []struct {
	min   float64
	level Level
}{
	{80, Level{Text: "AI Enthusiast", Color: "#22c55e"}},
	{60, Level{Text: "AI Optimist", Color: "#84cc16"}},
	{40, Level{Text: "AI Neutral", Color: "#f59e0b"}},
	{20, Level{Text: "AI Skeptic", Color: "#f97316"}},
	{0, Level{Text: "AI Pessimist", Color: "#ef4444"}},
}

// Service generates yes/no questions about AI and scores the answers.
type Service struct {
	completer ai.Completer
	total     int
	log       *slog.Logger
}

// NewService 创建问答服务，total 为默认题目数量。
func NewService(completer ai.Completer, total int, log *slog.Logger) *Service {
	return &Service{completer: completer, total: total, log: log}
}

// Total returns the configured number of questions.
func (s *Service) Total() int {
	return s.total
}

// NextQuestion asks the model for the next question given the answers so far.
func (s *Service) NextQuestion(ctx context.Context, history []quiz.Item) (NextQuestionReply, error) {
	tone := ToneOf(history)

	response, err := s.completer.Complete(ctx, ai.Prompt{
		System: BuildSystemPrompt(tone, history),
		Query:  nextQuestionQuery,
	})
	if err != nil {
		return NextQuestionReply{}, fmt.Errorf("generate question: %w", err)
	}

	question := strings.TrimSpace(response)
	if question == "" {
		s.log.Warn("empty question from model, use fallback")
		question = FallbackQuestion
	}
	return NextQuestionReply{NextQuestion: question, Tone: tone}, nil
}

// ToneOf derives the tone from the first answer only.
func ToneOf(history []quiz.Item) quiz.Tone {
	if len(history) == 0 || history[0].UserAnswer == nil {
		return quiz.ToneNeutral
	}
	switch *history[0].UserAnswer {
	case quiz.Yes:
		return quiz.TonePositive
	case quiz.No:
		return quiz.ToneNegative
	default:
		return quiz.ToneNeutral
	}
}

// Summarize scores the answers against total; total <= 0 uses the configured count.
func (s *Service) Summarize(history []quiz.Item, total int) Summary {
	if total <= 0 {
		total = s.total
	}

	answered := lo.Filter(history, func(item quiz.Item, _ int) bool {
		return item.Answered()
	})
	yes := lo.CountBy(answered, func(item quiz.Item) bool {
		return *item.UserAnswer == quiz.Yes
	})
	no := lo.CountBy(answered, func(item quiz.Item) bool {
		return *item.UserAnswer == quiz.No
	})

	yesPct := percentage(yes, total)
	return Summary{
		Total:         total,
		Answered:      len(answered),
		YesCount:      yes,
		NoCount:       no,
		YesPercentage: yesPct,
		NoPercentage:  percentage(no, total),
		Level:         LevelFor(yesPct),
		Theme:         themeFor(yes, no),
		Completed:     len(answered) >= total,
	}
}

// LevelFor maps a yes percentage to its preference level.
func LevelFor(yesPercentage float64) Level {
	for _, l := range levels {
		if yesPercentage >= l.min {
			return l.level
		}
	}
	return levels[len(levels)-1].level
}

func themeFor(yes, no int) Theme {
	switch {
	case yes > no:
		return ThemeLight
	case no > yes:
		return ThemeDark
	default:
		return ThemeNeutral
	}
}

func percentage(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(n*100) / float64(total)
}
