package image

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/zhouzirui/mirror-lab/backend/internal/llm"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/ai"
)

var (
	ErrPromptRequired = errors.New("prompt is required")
	ErrNoImage        = errors.New("no image generated")
)

// Result is a generated image encoded for JSON transport.
type Result struct {
	ImageBase64 string `json:"imageBase64"`
	MIMEType    string `json:"mimeType"`
}

// Service generates images from text prompts.
type Service struct {
	generator ai.ImageGenerator
	timeout   time.Duration
	log       *slog.Logger
}

// NewService 创建图片生成服务，timeout 限制每次后端调用的时长。
func NewService(generator ai.ImageGenerator, timeout time.Duration, log *slog.Logger) *Service {
	return &Service{generator: generator, timeout: timeout, log: log}
}

// Generate returns the first image produced for prompt.
func (s *Service) Generate(ctx context.Context, prompt string) (Result, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Result{}, ErrPromptRequired
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	img, err := s.generator.GenerateImage(ctx, prompt)
	if err != nil {
		if errors.Is(err, llm.ErrNoImage) {
			return Result{}, ErrNoImage
		}
		return Result{}, fmt.Errorf("generate image: %w", err)
	}
	if len(img.Data) == 0 {
		return Result{}, ErrNoImage
	}

	mimeType := img.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}

	s.log.Debug("image generated", "bytes", len(img.Data), "mime", mimeType)
	return Result{
		ImageBase64: base64.StdEncoding.EncodeToString(img.Data),
		MIMEType:    mimeType,
	}, nil
}
