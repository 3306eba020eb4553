package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/hashicorp/go-multierror"

	"github.com/zhouzirui/mirror-lab/backend/internal/llm"
)

// Supported AI providers.
const (
	ProviderGemini = "gemini"
	ProviderArk    = "ark"
	ProviderOpenAI = "openai"
)

// ErrImageUnsupported 表示当前提供方不支持图片生成。
var ErrImageUnsupported = llm.ErrImageUnsupported

// Config 聚合整个服务的配置项。
type Config struct {
	Server ServerConfig
	Log    LogConfig
	AI     AIConfig
	Quiz   QuizConfig
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Port      string `env:"PORT" envDefault:"8080"`
	BodyLimit int64  `env:"HTTP_BODY_LIMIT" envDefault:"1048576"`
	Addr      string
}

// LogConfig 描述日志配置。
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"INFO"`
}

// QuizConfig 描述问答页面的配置。
type QuizConfig struct {
	TotalQuestions int `env:"QUIZ_TOTAL_QUESTIONS" envDefault:"10"`
}

// AIConfig 描述大模型相关配置。
type AIConfig struct {
	Provider         string        `env:"AI_PROVIDER" envDefault:"gemini"`
	Temperature      float32       `env:"AI_TEMPERATURE"`
	MaxTokens        int           `env:"AI_MAX_TOKENS"`
	Timeout          time.Duration `env:"AI_TIMEOUT" envDefault:"60s"`
	StanceLLMEnabled bool          `env:"AI_STANCE_LLM_ENABLED" envDefault:"false"`

	// temperatureSet 记录 AI_TEMPERATURE 是否被显式设置，0 也是合法取值
	temperatureSet bool

	Gemini GeminiConfig
	Ark    ArkConfig
	OpenAI OpenAIConfig
}

// GeminiConfig holds Google Gemini credentials and model names.
type GeminiConfig struct {
	APIKey     string `env:"GEMINI_API_KEY"`
	Model      string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	ImageModel string `env:"GEMINI_IMAGE_MODEL" envDefault:"gemini-2.5-flash-image"`
}

// ArkConfig holds Volcengine Ark credentials.
type ArkConfig struct {
	APIKey    string `env:"ARK_API_KEY"`
	AccessKey string `env:"ARK_ACCESS_KEY"`
	SecretKey string `env:"ARK_SECRET_KEY"`
	Model     string `env:"ARK_MODEL"`
	BaseURL   string `env:"ARK_BASE_URL" envDefault:"https://ark.cn-beijing.volces.com/api/v3"`
	Region    string `env:"ARK_REGION" envDefault:"cn-beijing"`
}

// OpenAIConfig holds OpenAI credentials and model names.
type OpenAIConfig struct {
	APIKey     string `env:"OPENAI_API_KEY"`
	BaseURL    string `env:"OPENAI_BASE_URL"`
	Model      string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	ImageModel string `env:"OPENAI_IMAGE_MODEL" envDefault:"dall-e-3"`
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	addr, err := listenAddr(cfg.Server.Port)
	if err != nil {
		return nil, err
	}
	cfg.Server.Addr = addr
	if v, ok := os.LookupEnv("AI_TEMPERATURE"); ok && strings.TrimSpace(v) != "" {
		cfg.AI.temperatureSet = true
	}
	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
	if cfg.AI.Provider == "" {
		cfg.AI.Provider = ProviderGemini
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.AI.Provider {
	case ProviderGemini, ProviderArk, ProviderOpenAI:
	default:
		result = multierror.Append(result, fmt.Errorf("invalid AI_PROVIDER value %q", c.AI.Provider))
	}
	if c.AI.Timeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("AI_TIMEOUT must be positive, got %s", c.AI.Timeout))
	}
	if c.AI.Temperature < 0 || c.AI.Temperature > 2 {
		result = multierror.Append(result, fmt.Errorf("AI_TEMPERATURE must be within [0, 2], got %v", c.AI.Temperature))
	}
	if c.AI.MaxTokens < 0 {
		result = multierror.Append(result, fmt.Errorf("AI_MAX_TOKENS must not be negative, got %d", c.AI.MaxTokens))
	}
	if c.Quiz.TotalQuestions < 1 {
		result = multierror.Append(result, fmt.Errorf("QUIZ_TOTAL_QUESTIONS must be at least 1, got %d", c.Quiz.TotalQuestions))
	}
	if c.Server.BodyLimit < 1 {
		result = multierror.Append(result, fmt.Errorf("HTTP_BODY_LIMIT must be positive, got %d", c.Server.BodyLimit))
	}

	return result.ErrorOrNil()
}

// listenAddr 解析服务器监听地址。
func listenAddr(port string) (string, error) {
	port = strings.TrimSpace(port)
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return port, nil
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}

	return ":" + port, nil
}

// Enabled 表示所选提供方的密钥是否齐全。
func (c AIConfig) Enabled() bool {
	switch c.Provider {
	case ProviderGemini:
		return c.Gemini.APIKey != "" && c.Gemini.Model != ""
	case ProviderArk:
		return c.Ark.Model != "" && (c.Ark.APIKey != "" || (c.Ark.AccessKey != "" && c.Ark.SecretKey != ""))
	case ProviderOpenAI:
		return c.OpenAI.APIKey != "" && c.OpenAI.Model != ""
	default:
		return false
	}
}

// ModelName returns the chat model of the selected provider.
func (c AIConfig) ModelName() string {
	switch c.Provider {
	case ProviderGemini:
		return c.Gemini.Model
	case ProviderArk:
		return c.Ark.Model
	case ProviderOpenAI:
		return c.OpenAI.Model
	default:
		return ""
	}
}

// NewChatModel 使用配置创建一个模型实例。
func (c AIConfig) NewChatModel(ctx context.Context) (model.BaseChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("%s 凭证或模型配置缺失", c.Provider)
	}

	switch c.Provider {
	case ProviderGemini:
		return llm.NewGeminiChatModel(ctx, c.geminiOptions())
	case ProviderOpenAI:
		return llm.NewOpenAIChatModel(c.openAIOptions()), nil
	default:
		return c.newArkChatModel(ctx)
	}
}

// NewImageGenerator 创建图片生成后端，Ark 暂不支持。
func (c AIConfig) NewImageGenerator(ctx context.Context) (ImageGenerator, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("%s 凭证或模型配置缺失", c.Provider)
	}

	switch c.Provider {
	case ProviderGemini:
		return llm.NewGeminiImageGenerator(ctx, c.geminiOptions())
	case ProviderOpenAI:
		return llm.NewOpenAIImageGenerator(c.openAIOptions()), nil
	default:
		return nil, ErrImageUnsupported
	}
}

// ImageGenerator is satisfied by the llm image backends.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (llm.Image, error)
}

// TemperatureOverride 返回显式配置的温度，未配置时为 nil，由模型使用默认值。
func (c AIConfig) TemperatureOverride() *float32 {
	if !c.temperatureSet && c.Temperature == 0 {
		return nil
	}
	val := c.Temperature
	return &val
}

func (c AIConfig) geminiOptions() llm.GeminiOptions {
	return llm.GeminiOptions{
		APIKey:      c.Gemini.APIKey,
		Model:       c.Gemini.Model,
		ImageModel:  c.Gemini.ImageModel,
		Temperature: c.TemperatureOverride(),
		MaxTokens:   c.MaxTokens,
	}
}

func (c AIConfig) openAIOptions() llm.OpenAIOptions {
	return llm.OpenAIOptions{
		APIKey:      c.OpenAI.APIKey,
		BaseURL:     c.OpenAI.BaseURL,
		Model:       c.OpenAI.Model,
		ImageModel:  c.OpenAI.ImageModel,
		Temperature: c.TemperatureOverride(),
		MaxTokens:   c.MaxTokens,
	}
}

func (c AIConfig) newArkChatModel(ctx context.Context) (model.BaseChatModel, error) {
	var maxTokens *int
	if c.MaxTokens > 0 {
		val := c.MaxTokens
		maxTokens = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.Ark.BaseURL,
		Region:      c.Ark.Region,
		APIKey:      c.Ark.APIKey,
		AccessKey:   c.Ark.AccessKey,
		SecretKey:   c.Ark.SecretKey,
		Model:       c.Ark.Model,
		MaxTokens:   maxTokens,
		Temperature: c.TemperatureOverride(),
	}

	return ark.NewChatModel(ctx, cfg)
}
