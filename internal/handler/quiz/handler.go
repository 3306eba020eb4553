package quiz

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/mirror-lab/backend/internal/handler/httperr"
	"github.com/zhouzirui/mirror-lab/backend/internal/model/quiz"
	quizService "github.com/zhouzirui/mirror-lab/backend/internal/service/quiz"
	"github.com/zhouzirui/mirror-lab/backend/pkg/utils"
)

// NextRequest carries the answers so far.
type NextRequest struct {
	History []quiz.Item `json:"history" validate:"required,dive"`
}

// ResultRequest asks for the score of a quiz; Total falls back to the configured count.
type ResultRequest struct {
	History []quiz.Item `json:"history" validate:"required,dive"`
	Total   int         `json:"total" validate:"gte=0"`
}

// Handler 问答页面的HTTP处理器
type Handler struct {
	quizSvc   *quizService.Service
	bodyLimit int64
	log       *slog.Logger
}

// New 创建问答处理器
func New(quizSvc *quizService.Service, bodyLimit int64, log *slog.Logger) *Handler {
	return &Handler{
		quizSvc:   quizSvc,
		bodyLimit: bodyLimit,
		log:       log,
	}
}

// RegisterRoutes 注册问答路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/quiz/ai", h.handleNext)
	r.Post("/quiz/result", h.handleResult)
}

func (h *Handler) handleNext(w http.ResponseWriter, r *http.Request) {
	var req NextRequest
	if err := utils.DecodeJSON(w, r, h.bodyLimit, &req); err != nil {
		httperr.Respond(w, h.log, err)
		return
	}

	reply, err := h.quizSvc.NextQuestion(r.Context(), req.History)
	if err != nil {
		httperr.Respond(w, h.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, reply)
}

func (h *Handler) handleResult(w http.ResponseWriter, r *http.Request) {
	var req ResultRequest
	if err := utils.DecodeJSON(w, r, h.bodyLimit, &req); err != nil {
		httperr.Respond(w, h.log, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.quizSvc.Summarize(req.History, req.Total))
}
