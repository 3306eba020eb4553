package stance

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/zhouzirui/mirror-lab/backend/internal/analysis/sentiment"
)

// Source 表示判定结果的来源。
type Source string

const (
	SourceLLM      Source = "llm"
	SourceKeywords Source = "keywords"
)

// Verdict 表示对一段文本立场的判定。
type Verdict struct {
	Polarity   sentiment.Polarity
	Confidence float32
	Reason     string
	Source     Source
}

// Service 使用大模型判断用户对 AI 的立场，并在必要时回退到关键词规则。
type Service struct {
	enabled    bool
	timeout    time.Duration
	classifier compose.Runnable[map[string]any, *schema.Message]
	log        *slog.Logger
}

// NewService 创建立场判定服务。chatModel 为空或 enabled 为 false 时只使用关键词。
// timeout 限制每次大模型调用，超时后回退到关键词。
func NewService(ctx context.Context, chatModel model.BaseChatModel, enabled bool, timeout time.Duration, log *slog.Logger) (*Service, error) {
	svc := &Service{
		enabled: enabled && chatModel != nil,
		timeout: timeout,
		log:     log,
	}
	if !svc.enabled {
		return svc, nil
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(stanceSystemPrompt),
		schema.UserMessage(stanceUserPrompt),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile stance classifier chain: %w", err)
	}

	svc.classifier = runnable
	return svc, nil
}

// Enabled 返回是否会调用大模型。
func (s *Service) Enabled() bool {
	return s != nil && s.enabled && s.classifier != nil
}

// Classify 判定 text 的立场，结果总是 positive 或 negative。
// 大模型不可用、输出无法解析或给出 neutral 时，使用 fallback 词表并以 tieBreak 打破平局。
func (s *Service) Classify(ctx context.Context, text string, fallback *sentiment.Classifier, tieBreak sentiment.Polarity) Verdict {
	if !s.Enabled() {
		return keywordVerdict(text, fallback, tieBreak)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	msg, err := s.classifier.Invoke(ctx, map[string]any{"text": strings.TrimSpace(text)})
	if err != nil {
		s.log.Warn("stance classifier invoke failed, use fallback", "error", err)
		return keywordVerdict(text, fallback, tieBreak)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return keywordVerdict(text, fallback, tieBreak)
	}

	result, err := parseClassifierOutput(msg.Content)
	if err != nil {
		s.log.Warn("stance classifier output parse failed, use fallback", "error", err)
		return keywordVerdict(text, fallback, tieBreak)
	}

	polarity, ok := parseStanceLabel(result.Stance)
	if !ok || polarity == sentiment.Neutral {
		return keywordVerdict(text, fallback, tieBreak)
	}

	return Verdict{
		Polarity:   polarity,
		Confidence: clampConfidence(result.Confidence),
		Reason:     strings.TrimSpace(result.Reason),
		Source:     SourceLLM,
	}
}

func keywordVerdict(text string, fallback *sentiment.Classifier, tieBreak sentiment.Polarity) Verdict {
	score := fallback.Score(text)
	confidence := float32(0.3)
	if score.Positive != score.Negative {
		confidence = 0.55
	}
	return Verdict{
		Polarity:   score.DecideBinary(tieBreak),
		Confidence: confidence,
		Reason:     "fallback",
		Source:     SourceKeywords,
	}
}

// parseClassifierOutput 解析大模型返回的 JSON。
func parseClassifierOutput(content string) (*classifierPayload, error) {
	trimmed := strings.TrimSpace(content)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("missing json object")
	}

	payload := &classifierPayload{}
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func parseStanceLabel(raw string) (sentiment.Polarity, bool) {
	p := sentiment.Polarity(strings.ToLower(strings.TrimSpace(raw)))
	return p, p.Valid()
}

func clampConfidence(val float32) float32 {
	if val <= 0 {
		return 0.6
	}
	if val > 1 {
		return 1
	}
	return val
}

type classifierPayload struct {
	Stance     string  `json:"stance"`
	Confidence float32 `json:"confidence"`
	Reason     string  `json:"reason"`
}

const stanceSystemPrompt = "You classify how a person feels about artificial intelligence. " +
	"Read the user's text (Korean or English) and decide whether it leans positive (AI as partner, growth, help) " +
	"or negative (AI as threat, replacement, control). " +
	"Return only one JSON object with the fields: stance (one of positive/negative/neutral), " +
	"confidence (a number between 0 and 1), reason (one short sentence). Do not output any other text."

const stanceUserPrompt = "User text:\n{text}\n\nReturn the JSON."
