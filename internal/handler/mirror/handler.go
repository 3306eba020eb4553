package mirror

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/mirror-lab/backend/internal/handler/httperr"
	mirrorService "github.com/zhouzirui/mirror-lab/backend/internal/service/mirror"
	"github.com/zhouzirui/mirror-lab/backend/pkg/utils"
)

// Handler 镜像系统的HTTP处理器
type Handler struct {
	mirrorSvc *mirrorService.Service
	bodyLimit int64
	log       *slog.Logger
}

// New 创建镜像系统处理器
func New(mirrorSvc *mirrorService.Service, bodyLimit int64, log *slog.Logger) *Handler {
	return &Handler{
		mirrorSvc: mirrorSvc,
		bodyLimit: bodyLimit,
		log:       log,
	}
}

// RegisterRoutes 注册镜像系统路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/mirror/intro", h.handleIntro)
	r.Post("/mirror/turn", h.handleTurn)
}

func (h *Handler) handleIntro(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.mirrorSvc.Intro())
}

func (h *Handler) handleTurn(w http.ResponseWriter, r *http.Request) {
	var req mirrorService.TurnRequest
	if err := utils.DecodeJSON(w, r, h.bodyLimit, &req); err != nil {
		httperr.Respond(w, h.log, err)
		return
	}

	resp, err := h.mirrorSvc.Turn(r.Context(), req)
	if err != nil {
		httperr.Respond(w, h.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, resp)
}
