package llm

import (
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestToGeminiContentsLiftsSystem(t *testing.T) {
	req := require.New(t)
	system, contents := toGeminiContents([]*schema.Message{
		schema.SystemMessage("be opposite"),
		schema.UserMessage("is the sky blue?"),
		schema.AssistantMessage("it is red", nil),
		nil,
		schema.UserMessage("is water cold?"),
	})

	req.Equal("be opposite", system)
	req.Len(contents, 3)
	req.Equal(string(genai.RoleUser), contents[0].Role)
	req.Equal(string(genai.RoleModel), contents[1].Role)
	req.Equal("is water cold?", contents[2].Parts[0].Text)
}

func TestToGeminiContentsWithoutSystem(t *testing.T) {
	system, contents := toGeminiContents([]*schema.Message{schema.UserMessage("hi")})
	require.Empty(t, system)
	require.Len(t, contents, 1)
}

func TestToOpenAIMessagesRoles(t *testing.T) {
	out := toOpenAIMessages([]*schema.Message{
		schema.SystemMessage("sys"),
		schema.UserMessage("u"),
		schema.AssistantMessage("a", nil),
	})
	require.Equal(t, []string{
		openai.ChatMessageRoleSystem,
		openai.ChatMessageRoleUser,
		openai.ChatMessageRoleAssistant,
	}, []string{out[0].Role, out[1].Role, out[2].Role})
}

func TestGeminiGenerateConfig(t *testing.T) {
	zero := float32(0)
	m := &GeminiChatModel{model: "gemini", temperature: &zero, maxTokens: 128}

	cfg := m.generateConfig("be brief", &model.Options{})
	require.NotNil(t, cfg.SystemInstruction)
	require.NotNil(t, cfg.Temperature)
	require.Equal(t, float32(0), *cfg.Temperature)
	require.Equal(t, int32(128), cfg.MaxOutputTokens)

	override, limit := float32(1.2), 32
	cfg = m.generateConfig("", &model.Options{Temperature: &override, MaxTokens: &limit})
	require.Nil(t, cfg.SystemInstruction)
	require.Equal(t, float32(1.2), *cfg.Temperature)
	require.Equal(t, int32(32), cfg.MaxOutputTokens)
}

func TestGeminiGenerateConfigDefaults(t *testing.T) {
	cfg := (&GeminiChatModel{model: "gemini"}).generateConfig("", &model.Options{})
	require.Nil(t, cfg.Temperature)
	require.Zero(t, cfg.MaxOutputTokens)
}

func TestOpenAIRequestKeepsExplicitZeroTemperature(t *testing.T) {
	zero := float32(0)
	m := &OpenAIChatModel{opts: OpenAIOptions{Model: "gpt", Temperature: &zero, MaxTokens: 64}}

	req := m.buildRequest([]*schema.Message{schema.UserMessage("hi")}, &model.Options{})
	require.Equal(t, "gpt", req.Model)
	require.Equal(t, 64, req.MaxTokens)
	require.NotZero(t, req.Temperature)
	require.Less(t, req.Temperature, float32(1e-6))

	unset := &OpenAIChatModel{opts: OpenAIOptions{Model: "gpt"}}
	require.Zero(t, unset.buildRequest(nil, &model.Options{}).Temperature)
}
