package chat

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/mirror-lab/backend/internal/handler/httperr"
	"github.com/zhouzirui/mirror-lab/backend/internal/model/chat"
	chatService "github.com/zhouzirui/mirror-lab/backend/internal/service/chat"
	"github.com/zhouzirui/mirror-lab/backend/pkg/utils"
)

// MessagesRequest is the body shared by the chat pages.
type MessagesRequest struct {
	Messages chat.Conversation `json:"messages" validate:"required,min=1,dive"`
}

// MirrorRequest adds the chamber state of the mirror page.
type MirrorRequest struct {
	Messages       chat.Conversation `json:"messages" validate:"required,min=1,dive"`
	Chamber        chat.Chamber      `json:"chamber" validate:"omitempty,oneof=positive negative"`
	IsFirstMessage bool              `json:"isFirstMessage"`
}

// Handler 聊天服务的HTTP处理器
type Handler struct {
	chatSvc   *chatService.Service
	bodyLimit int64
	log       *slog.Logger
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service, bodyLimit int64, log *slog.Logger) *Handler {
	return &Handler{
		chatSvc:   chatSvc,
		bodyLimit: bodyLimit,
		log:       log,
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleOpposite)
	r.Post("/chat/crazy", h.handleCrazy)
	r.Post("/chat/dual", h.handleDual)
	r.Post("/chat/mirror", h.handleMirror)
	r.Post("/chat/perspective", h.handlePerspective)
}

// handleOpposite 反向回答
func (h *Handler) handleOpposite(w http.ResponseWriter, r *http.Request) {
	var req MessagesRequest
	if err := utils.DecodeJSON(w, r, h.bodyLimit, &req); err != nil {
		httperr.Respond(w, h.log, err)
		return
	}

	reply, err := h.chatSvc.Opposite(r.Context(), req.Messages)
	if err != nil {
		httperr.Respond(w, h.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, reply)
}

// handleCrazy 前两轮友好，之后失控
func (h *Handler) handleCrazy(w http.ResponseWriter, r *http.Request) {
	var req MessagesRequest
	if err := utils.DecodeJSON(w, r, h.bodyLimit, &req); err != nil {
		httperr.Respond(w, h.log, err)
		return
	}

	reply, err := h.chatSvc.Crazy(r.Context(), req.Messages)
	if err != nil {
		httperr.Respond(w, h.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, reply)
}

// handleDual 同时询问两个角色
func (h *Handler) handleDual(w http.ResponseWriter, r *http.Request) {
	var req MessagesRequest
	if err := utils.DecodeJSON(w, r, h.bodyLimit, &req); err != nil {
		httperr.Respond(w, h.log, err)
		return
	}

	reply, err := h.chatSvc.Dual(r.Context(), req.Messages)
	if err != nil {
		httperr.Respond(w, h.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, reply)
}

// handleMirror 回声室
func (h *Handler) handleMirror(w http.ResponseWriter, r *http.Request) {
	var req MirrorRequest
	if err := utils.DecodeJSON(w, r, h.bodyLimit, &req); err != nil {
		httperr.Respond(w, h.log, err)
		return
	}

	reply, err := h.chatSvc.Mirror(r.Context(), req.Messages, req.Chamber, req.IsFirstMessage)
	if err != nil {
		httperr.Respond(w, h.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, reply)
}

// handlePerspective 强化用户的立场
func (h *Handler) handlePerspective(w http.ResponseWriter, r *http.Request) {
	var req MessagesRequest
	if err := utils.DecodeJSON(w, r, h.bodyLimit, &req); err != nil {
		httperr.Respond(w, h.log, err)
		return
	}

	reply, err := h.chatSvc.Perspective(r.Context(), req.Messages)
	if err != nil {
		httperr.Respond(w, h.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, reply)
}
