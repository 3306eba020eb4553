// Package httperr maps service errors to HTTP statuses.
package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/zhouzirui/mirror-lab/backend/internal/llm"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/ai"
	chatService "github.com/zhouzirui/mirror-lab/backend/internal/service/chat"
	imageService "github.com/zhouzirui/mirror-lab/backend/internal/service/image"
	mirrorService "github.com/zhouzirui/mirror-lab/backend/internal/service/mirror"
	"github.com/zhouzirui/mirror-lab/backend/pkg/utils"
)

var badRequest = []error{
	utils.ErrInvalidRequest,
	chatService.ErrEmptyConversation,
	chatService.ErrChamberRequired,
	mirrorService.ErrEmptyInput,
	imageService.ErrPromptRequired,
}

// Status returns the HTTP status for err.
func Status(err error) int {
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	switch {
	case errors.Is(err, ai.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, llm.ErrImageUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing text for err.
func Message(err error) string {
	switch {
	case errors.Is(err, utils.ErrInvalidRequest):
		return utils.ValidationMessage(err)
	case errors.Is(err, ai.ErrUnavailable):
		return ai.ErrUnavailable.Error()
	case errors.Is(err, llm.ErrImageUnsupported):
		return llm.ErrImageUnsupported.Error()
	default:
		return err.Error()
	}
}

// Respond writes err as {"error": message}; server errors are logged.
func Respond(w http.ResponseWriter, log *slog.Logger, err error) {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "status", status, "error", err)
	}
	utils.RespondError(w, status, Message(err))
}
