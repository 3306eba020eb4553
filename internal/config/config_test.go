package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, ProviderGemini, cfg.AI.Provider)
	require.Equal(t, "gemini-2.5-flash", cfg.AI.Gemini.Model)
	require.Equal(t, 60*time.Second, cfg.AI.Timeout)
	require.Equal(t, 10, cfg.Quiz.TotalQuestions)
	require.False(t, cfg.AI.Enabled())
}

func TestLoadHostPort(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9000")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
}

func TestLoadRejectsSpacedPort(t *testing.T) {
	t.Setenv("PORT", "80 80")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadProviderIsNormalized(t *testing.T) {
	t.Setenv("AI_PROVIDER", " OpenAI ")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ProviderOpenAI, cfg.AI.Provider)
	require.True(t, cfg.AI.Enabled())
	require.Equal(t, "gpt-4o-mini", cfg.AI.ModelName())
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{BodyLimit: 0},
		AI:     AIConfig{Provider: "bard", Timeout: 0, Temperature: 3},
		Quiz:   QuizConfig{TotalQuestions: 0},
	}
	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{"AI_PROVIDER", "AI_TIMEOUT", "AI_TEMPERATURE", "QUIZ_TOTAL_QUESTIONS", "HTTP_BODY_LIMIT"} {
		require.True(t, strings.Contains(msg, want), "missing %s in %q", want, msg)
	}
}

func TestArkEnabledWithAccessKeys(t *testing.T) {
	c := AIConfig{Provider: ProviderArk, Ark: ArkConfig{Model: "ep-1", AccessKey: "ak", SecretKey: "sk"}}
	require.True(t, c.Enabled())

	c.Ark.SecretKey = ""
	require.False(t, c.Enabled())
}

func TestArkHasNoImageBackend(t *testing.T) {
	c := AIConfig{Provider: ProviderArk, Ark: ArkConfig{Model: "ep-1", APIKey: "key"}}
	_, err := c.NewImageGenerator(t.Context())
	require.ErrorIs(t, err, ErrImageUnsupported)
}

func TestTemperatureOverride(t *testing.T) {
	t.Setenv("AI_TEMPERATURE", "")
	cfg, err := Load()
	require.NoError(t, err)
	require.Nil(t, cfg.AI.TemperatureOverride())

	t.Setenv("AI_TEMPERATURE", "0")
	cfg, err = Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.AI.TemperatureOverride())
	require.Equal(t, float32(0), *cfg.AI.TemperatureOverride())

	t.Setenv("AI_TEMPERATURE", "0.7")
	cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, float32(0.7), *cfg.AI.TemperatureOverride())
}

func TestGeminiOptionsCarryMaxTokens(t *testing.T) {
	c := AIConfig{Provider: ProviderGemini, MaxTokens: 256, Gemini: GeminiConfig{APIKey: "k", Model: "m"}}
	opts := c.geminiOptions()
	require.Equal(t, 256, opts.MaxTokens)
	require.Nil(t, opts.Temperature)
}
