package ai

import (
	"context"
	"errors"

	"github.com/zhouzirui/mirror-lab/backend/internal/llm"
)

// ErrUnavailable is returned when no model backend is configured.
var ErrUnavailable = errors.New("ai service unavailable")

// Unavailable stands in for both backends when credentials are missing.
type Unavailable struct{}

// Complete always fails with ErrUnavailable.
func (Unavailable) Complete(context.Context, Prompt) (string, error) {
	return "", ErrUnavailable
}

// GenerateImage always fails with ErrUnavailable.
func (Unavailable) GenerateImage(context.Context, string) (llm.Image, error) {
	return llm.Image{}, ErrUnavailable
}

// ImagesUnsupported is the image backend of providers without image generation.
type ImagesUnsupported struct{}

// GenerateImage always fails with llm.ErrImageUnsupported.
func (ImagesUnsupported) GenerateImage(context.Context, string) (llm.Image, error) {
	return llm.Image{}, llm.ErrImageUnsupported
}
