package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/sashabaranov/go-openai"
)

// OpenAIOptions configures the OpenAI backends.
type OpenAIOptions struct {
	APIKey      string
	BaseURL     string
	Model       string
	ImageModel  string
	Temperature *float32 // nil 时使用模型默认值
	MaxTokens   int
}

func newOpenAIClient(opts OpenAIOptions) *openai.Client {
	if opts.BaseURL == "" {
		return openai.NewClient(opts.APIKey)
	}
	cfg := openai.DefaultConfig(opts.APIKey)
	cfg.BaseURL = opts.BaseURL
	return openai.NewClientWithConfig(cfg)
}

// OpenAIChatModel adapts chat completions to an eino chat model.
type OpenAIChatModel struct {
	client *openai.Client
	opts   OpenAIOptions
}

// NewOpenAIChatModel creates the adapter.
func NewOpenAIChatModel(opts OpenAIOptions) *OpenAIChatModel {
	return &OpenAIChatModel{client: newOpenAIClient(opts), opts: opts}
}

// Generate runs one chat completion.
func (m *OpenAIChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	options := model.GetCommonOptions(&model.Options{Model: &m.opts.Model}, opts...)
	req := m.buildRequest(input, options)

	resp, err := m.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai chat completion: %w", ErrEmptyResponse)
	}
	return schema.AssistantMessage(resp.Choices[0].Message.Content, nil), nil
}

// buildRequest merges per-call options over the adapter defaults.
func (m *OpenAIChatModel) buildRequest(input []*schema.Message, options *model.Options) openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Model:     m.opts.Model,
		Messages:  toOpenAIMessages(input),
		MaxTokens: m.opts.MaxTokens,
	}
	if options.Model != nil && *options.Model != "" {
		req.Model = *options.Model
	}
	if options.MaxTokens != nil {
		req.MaxTokens = *options.MaxTokens
	}

	temperature := m.opts.Temperature
	if options.Temperature != nil {
		temperature = options.Temperature
	}
	if temperature != nil {
		req.Temperature = *temperature
		if req.Temperature == 0 {
			// temperature 带 omitempty，0 需要用最小正数表示
			req.Temperature = math.SmallestNonzeroFloat32
		}
	}
	return req
}

// Stream yields the full reply as a single chunk.
func (m *OpenAIChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := m.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

// BindTools is not supported.
func (m *OpenAIChatModel) BindTools(_ []*schema.ToolInfo) error {
	return ErrToolsUnsupported
}

func toOpenAIMessages(input []*schema.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(input))
	for _, msg := range input {
		if msg == nil {
			continue
		}
		role := openai.ChatMessageRoleAssistant
		switch msg.Role {
		case schema.System:
			role = openai.ChatMessageRoleSystem
		case schema.User:
			role = openai.ChatMessageRoleUser
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}
	return out
}

// OpenAIImageGenerator produces images with the images endpoint.
type OpenAIImageGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIImageGenerator creates the image backend.
func NewOpenAIImageGenerator(opts OpenAIOptions) *OpenAIImageGenerator {
	return &OpenAIImageGenerator{client: newOpenAIClient(opts), model: opts.ImageModel}
}

// GenerateImage requests a single base64-encoded PNG.
func (g *OpenAIImageGenerator) GenerateImage(ctx context.Context, prompt string) (Image, error) {
	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          g.model,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return Image{}, fmt.Errorf("openai image: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return Image{}, ErrNoImage
	}
	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return Image{}, fmt.Errorf("decode openai image: %w", err)
	}
	return Image{Data: data, MIMEType: "image/png"}, nil
}
