//go:generate go run go.uber.org/mock/mockgen -source=llm_service.go -destination=mocks/mock_ai.go -package=mocks
package ai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/zhouzirui/mirror-lab/backend/internal/llm"
	"github.com/zhouzirui/mirror-lab/backend/internal/model/chat"
)

// Prompt is one pass-through request: a system instruction, the prior turns and the latest
// user text.
type Prompt struct {
	System  string
	History []chat.Message
	Query   string
}

// Completer returns the model's full text reply for a prompt.
type Completer interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}

// ImageGenerator returns a generated image for a text prompt.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (llm.Image, error)
}

// Service runs prompts through the configured chat model.
type Service struct {
	chatModel model.BaseChatModel
	chain     compose.Runnable[map[string]any, *schema.Message]
	timeout   time.Duration
	log       *slog.Logger
}

// NewService compiles the template ▶ model chain once.
func NewService(ctx context.Context, chatModel model.BaseChatModel, timeout time.Duration, log *slog.Logger) (*Service, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		chain:     runnable,
		timeout:   timeout,
		log:       log,
	}, nil
}

// Complete sends one full request and waits for one full response.
func (s *Service) Complete(ctx context.Context, p Prompt) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	response, err := s.chain.Invoke(ctx, buildChainInput(p))
	if err != nil {
		return "", fmt.Errorf("failed to run AI chain: %w", err)
	}
	if response == nil {
		return "", fmt.Errorf("failed to run AI chain: %w", llm.ErrEmptyResponse)
	}

	s.log.Debug("generated response",
		"history", len(p.History),
		"length", len(response.Content),
		"latency_ms", time.Since(start).Milliseconds())
	return response.Content, nil
}

// ChatModel returns the underlying chat model.
func (s *Service) ChatModel() model.BaseChatModel {
	return s.chatModel
}

func buildChainInput(p Prompt) map[string]any {
	return map[string]any{
		"system":  p.System,
		"history": buildHistoryMessages(p.History),
		"query":   p.Query,
	}
}

// buildHistoryMessages maps user turns to user messages and every other turn to the model.
func buildHistoryMessages(messages []chat.Message) []*schema.Message {
	if len(messages) == 0 {
		return nil
	}

	history := make([]*schema.Message, 0, len(messages))
	for _, msg := range messages {
		if msg.IsUser() {
			history = append(history, schema.UserMessage(msg.Content))
			continue
		}
		history = append(history, schema.AssistantMessage(msg.Content, nil))
	}
	return history
}
