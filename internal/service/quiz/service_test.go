package quiz

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zhouzirui/mirror-lab/backend/internal/model/quiz"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/ai"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/ai/mocks"
)

func answer(a quiz.Answer) *quiz.Answer {
	return &a
}

func newService(t *testing.T) (*Service, *mocks.MockCompleter) {
	t.Helper()
	completer := mocks.NewMockCompleter(gomock.NewController(t))
	return NewService(completer, 10, logs.GetLoggerFromLevel(slog.LevelDebug)), completer
}

func TestToneOf(t *testing.T) {
	tests := []struct {
		name    string
		history []quiz.Item
		want    quiz.Tone
	}{
		{name: "empty", history: nil, want: quiz.ToneNeutral},
		{name: "unanswered", history: []quiz.Item{{Question: "q"}}, want: quiz.ToneNeutral},
		{name: "yes", history: []quiz.Item{{Question: "q", UserAnswer: answer(quiz.Yes)}}, want: quiz.TonePositive},
		{name: "no", history: []quiz.Item{{Question: "q", UserAnswer: answer(quiz.No)}}, want: quiz.ToneNegative},
		{
			name: "only the first answer counts",
			history: []quiz.Item{
				{Question: "q1", UserAnswer: answer(quiz.No)},
				{Question: "q2", UserAnswer: answer(quiz.Yes)},
				{Question: "q3", UserAnswer: answer(quiz.Yes)},
			},
			want: quiz.ToneNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ToneOf(tt.history))
		})
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	history := []quiz.Item{
		{Question: "Do you use AI daily?", UserAnswer: answer(quiz.Yes)},
		{Question: "Is AI art real art?"},
	}

	got := BuildSystemPrompt(quiz.TonePositive, history)
	require.True(t, strings.HasPrefix(got, "You are an expert at creating quizzes about AI"))
	require.Contains(t, got, "Since the user answered YES")
	require.Contains(t, got, "1. Q: Do you use AI daily? A: yes\n2. Q: Is AI art real art? A: Waiting for answer")
	require.True(t, strings.HasSuffix(got, "Output only the question."))

	neutral := BuildSystemPrompt(quiz.ToneNeutral, nil)
	require.NotContains(t, neutral, "Important:")
	require.Contains(t, neutral, "Topic examples:")
}

func TestNextQuestion(t *testing.T) {
	svc, completer := newService(t)
	history := []quiz.Item{{Question: "Do you use AI daily?", UserAnswer: answer(quiz.No)}}

	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p ai.Prompt) (string, error) {
			require.Equal(t, nextQuestionQuery, p.Query)
			require.Empty(t, p.History)
			require.Contains(t, p.System, "Since the user answered NO")
			return "  Are you concerned that AI will take away jobs?\n", nil
		})

	got, err := svc.NextQuestion(context.Background(), history)
	require.NoError(t, err)
	require.Equal(t, "Are you concerned that AI will take away jobs?", got.NextQuestion)
	require.Equal(t, quiz.ToneNegative, got.Tone)
}

func TestNextQuestionFallsBackOnBlankReply(t *testing.T) {
	svc, completer := newService(t)
	completer.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("   ", nil)

	got, err := svc.NextQuestion(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, FallbackQuestion, got.NextQuestion)
	require.Equal(t, quiz.ToneNeutral, got.Tone)
}

func TestNextQuestionPropagatesModelError(t *testing.T) {
	svc, completer := newService(t)
	boom := errors.New("quota")
	completer.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", boom)

	_, err := svc.NextQuestion(context.Background(), nil)
	require.ErrorIs(t, err, boom)
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{100, "AI Enthusiast"},
		{80, "AI Enthusiast"},
		{79.9, "AI Optimist"},
		{60, "AI Optimist"},
		{40, "AI Neutral"},
		{20, "AI Skeptic"},
		{19, "AI Pessimist"},
		{0, "AI Pessimist"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, LevelFor(tt.pct).Text, "pct %v", tt.pct)
	}
}

func TestSummarize(t *testing.T) {
	svc, _ := newService(t)

	var history []quiz.Item
	for i := range 10 {
		a := quiz.No
		if i < 7 {
			a = quiz.Yes
		}
		history = append(history, quiz.Item{Question: "q", UserAnswer: answer(a)})
	}

	got := svc.Summarize(history, 0)
	require.Equal(t, 10, got.Total)
	require.Equal(t, 7, got.YesCount)
	require.Equal(t, 3, got.NoCount)
	require.InDelta(t, 70.0, got.YesPercentage, 1e-9)
	require.InDelta(t, 30.0, got.NoPercentage, 1e-9)
	require.Equal(t, Level{Text: "AI Optimist", Color: "#84cc16"}, got.Level)
	require.Equal(t, ThemeLight, got.Theme)
	require.True(t, got.Completed)
}

func TestSummarizeInProgress(t *testing.T) {
	svc, _ := newService(t)
	history := []quiz.Item{
		{Question: "q1", UserAnswer: answer(quiz.No)},
		{Question: "q2"},
	}

	got := svc.Summarize(history, 4)
	require.Equal(t, 1, got.Answered)
	require.InDelta(t, 25.0, got.NoPercentage, 1e-9)
	require.Equal(t, "AI Pessimist", got.Level.Text)
	require.Equal(t, ThemeDark, got.Theme)
	require.False(t, got.Completed)
}
