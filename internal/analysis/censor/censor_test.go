package censor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/mirror-lab/backend/internal/analysis/sentiment"
)

func TestRewriteKorean(t *testing.T) {
	w := NewRewriter(PositiveSpin)
	out, changed := w.Rewrite("AI는 위험하고 걱정돼요")
	require.True(t, changed)
	require.Equal(t, "AI는 기회하고 관심돼요", out)
}

func TestRewriteRulesChainInOrder(t *testing.T) {
	// "두려움" is consumed whole before the shorter "두려" stem can fire.
	w := NewRewriter(PositiveSpin)
	out, _ := w.Rewrite("두려움과 두려운 마음")
	require.Equal(t, "설렘과 설레운 마음", out)
}

func TestRewriteIsCaseSensitive(t *testing.T) {
	w := NewRewriter(PositiveSpin)
	out, changed := w.Rewrite("FEAR")
	require.False(t, changed)
	require.Equal(t, "FEAR", out)
}

func TestRewriteMatchesInsideWords(t *testing.T) {
	// "no" fires before "not", so the negation is spun rather than dropped.
	w := NewRewriter(PositiveSpin)
	out, changed := w.Rewrite("I do not trust it")
	require.True(t, changed)
	require.Equal(t, "I do yest trust it", out)

	out, _ = w.Rewrite("it is not")
	require.Equal(t, "it is yest", out)
}

func TestRewriteUnchanged(t *testing.T) {
	w := NewRewriter(PositiveSpin)
	out, changed := w.Rewrite("AI 최고")
	require.False(t, changed)
	require.Equal(t, "AI 최고", out)
}

func TestNewRewriterSkipsEmptyRules(t *testing.T) {
	w := NewRewriter([]Rule{{"", "x"}, {"a", "b"}})
	out, _ := w.Rewrite("aaa")
	require.Equal(t, "bbb", out)
}

func TestMaskKeepsSpacing(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Single word",
			input:    "AI is great",
			expected: "AI is █████",
			words:    []string{"great"},
		},
		{
			name:     "Korean stem inside a word",
			input:    "정말 행복해요",
			expected: "정말 ██해요",
			words:    []string{"행복"},
		},
		{
			name:     "Uppercase input",
			input:    "LOVE it",
			expected: "████ it",
			words:    []string{"love"},
		},
		{
			name:     "Nothing to mask",
			input:    "it is fine",
			expected: "it is fine",
			words:    nil,
		},
	}

	masker := NewMasker(sentiment.MustMatcher([]string{"great", "행복", "love"}), DefaultMask)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, words := masker.Mask(tt.input)
			require.Equal(t, tt.expected, got)
			require.Equal(t, tt.words, words)
		})
	}
}
