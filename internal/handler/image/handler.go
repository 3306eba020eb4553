package image

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/mirror-lab/backend/internal/handler/httperr"
	imageService "github.com/zhouzirui/mirror-lab/backend/internal/service/image"
	"github.com/zhouzirui/mirror-lab/backend/pkg/utils"
)

// Request is the body of an image generation call.
type Request struct {
	Prompt string `json:"prompt" validate:"required"`
}

// Handler 图片生成的HTTP处理器
type Handler struct {
	imageSvc  *imageService.Service
	bodyLimit int64
	log       *slog.Logger
}

// New 创建图片处理器
func New(imageSvc *imageService.Service, bodyLimit int64, log *slog.Logger) *Handler {
	return &Handler{
		imageSvc:  imageSvc,
		bodyLimit: bodyLimit,
		log:       log,
	}
}

// RegisterRoutes 注册图片路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/image", h.handleGenerate)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := utils.DecodeJSON(w, r, h.bodyLimit, &req); err != nil {
		httperr.Respond(w, h.log, err)
		return
	}

	result, err := h.imageSvc.Generate(r.Context(), req.Prompt)
	if err != nil {
		httperr.Respond(w, h.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, result)
}
