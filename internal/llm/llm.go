// Package llm adapts external generative-model APIs to the eino chat model interface and to a
// small image generation interface.
package llm

import "errors"

var (
	ErrEmptyResponse    = errors.New("empty model response")
	ErrNoImage          = errors.New("response contained no image")
	ErrToolsUnsupported = errors.New("tool binding is not supported")
	ErrImageUnsupported = errors.New("image generation is not supported by the configured provider")
)

// Image is a generated picture.
type Image struct {
	Data     []byte
	MIMEType string
}
