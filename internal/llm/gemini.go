package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

// GeminiOptions configures the Gemini backends.
type GeminiOptions struct {
	APIKey      string
	Model       string
	ImageModel  string
	Temperature *float32 // nil 时使用模型默认值
	MaxTokens   int
}

func newGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return client, nil
}

// GeminiChatModel adapts the Gemini GenerateContent API to an eino chat model.
type GeminiChatModel struct {
	client      *genai.Client
	model       string
	temperature *float32
	maxTokens   int
}

// NewGeminiChatModel creates the adapter with its own client.
func NewGeminiChatModel(ctx context.Context, opts GeminiOptions) (*GeminiChatModel, error) {
	client, err := newGeminiClient(ctx, opts.APIKey)
	if err != nil {
		return nil, err
	}
	return &GeminiChatModel{
		client:      client,
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
	}, nil
}

// Generate sends the whole conversation and returns the model's full reply.
func (m *GeminiChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	options := model.GetCommonOptions(&model.Options{Model: &m.model}, opts...)

	system, contents := toGeminiContents(input)
	cfg := m.generateConfig(system, options)

	modelName := m.model
	if options.Model != nil && *options.Model != "" {
		modelName = *options.Model
	}

	res, err := m.client.Models.GenerateContent(ctx, modelName, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	if res == nil {
		return nil, fmt.Errorf("gemini generate: %w", ErrEmptyResponse)
	}
	return schema.AssistantMessage(res.Text(), nil), nil
}

// generateConfig merges per-call options over the adapter defaults.
func (m *GeminiChatModel) generateConfig(system string, options *model.Options) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if system != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}
	switch {
	case options.Temperature != nil:
		cfg.Temperature = genai.Ptr(*options.Temperature)
	case m.temperature != nil:
		cfg.Temperature = genai.Ptr(*m.temperature)
	}
	switch {
	case options.MaxTokens != nil && *options.MaxTokens > 0:
		cfg.MaxOutputTokens = int32(*options.MaxTokens)
	case m.maxTokens > 0:
		cfg.MaxOutputTokens = int32(m.maxTokens)
	}
	return cfg
}

// Stream yields the full reply as a single chunk.
func (m *GeminiChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := m.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

// BindTools is not supported; the chat flows never call tools.
func (m *GeminiChatModel) BindTools(_ []*schema.ToolInfo) error {
	return ErrToolsUnsupported
}

// toGeminiContents lifts system messages into one instruction and maps every other role to
// user or model.
func toGeminiContents(input []*schema.Message) (string, []*genai.Content) {
	var system []string
	contents := make([]*genai.Content, 0, len(input))
	for _, msg := range input {
		if msg == nil {
			continue
		}
		if msg.Role == schema.System {
			if s := strings.TrimSpace(msg.Content); s != "" {
				system = append(system, s)
			}
			continue
		}
		role := string(genai.RoleModel)
		if msg.Role == schema.User {
			role = string(genai.RoleUser)
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}
	return strings.Join(system, "\n\n"), contents
}

// GeminiImageGenerator produces images with a Gemini image model.
type GeminiImageGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiImageGenerator creates the image backend with its own client.
func NewGeminiImageGenerator(ctx context.Context, opts GeminiOptions) (*GeminiImageGenerator, error) {
	client, err := newGeminiClient(ctx, opts.APIKey)
	if err != nil {
		return nil, err
	}
	return &GeminiImageGenerator{client: client, model: opts.ImageModel}, nil
}

// GenerateImage returns the first inline image part of the first candidate.
func (g *GeminiImageGenerator) GenerateImage(ctx context.Context, prompt string) (Image, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return Image{}, fmt.Errorf("gemini image: %w", err)
	}
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0] == nil || res.Candidates[0].Content == nil {
		return Image{}, ErrNoImage
	}
	for _, part := range res.Candidates[0].Content.Parts {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		return Image{Data: part.InlineData.Data, MIMEType: part.InlineData.MIMEType}, nil
	}
	return Image{}, ErrNoImage
}
