package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/mirror-lab/backend/internal/handler/chat"
	"github.com/zhouzirui/mirror-lab/backend/internal/handler/image"
	"github.com/zhouzirui/mirror-lab/backend/internal/handler/mirror"
	"github.com/zhouzirui/mirror-lab/backend/internal/handler/persona"
	"github.com/zhouzirui/mirror-lab/backend/internal/handler/quiz"
	"github.com/zhouzirui/mirror-lab/backend/internal/handler/ws"
	middlewarePkg "github.com/zhouzirui/mirror-lab/backend/internal/middleware"
	personaModel "github.com/zhouzirui/mirror-lab/backend/internal/model/persona"
	chatService "github.com/zhouzirui/mirror-lab/backend/internal/service/chat"
	imageService "github.com/zhouzirui/mirror-lab/backend/internal/service/image"
	mirrorService "github.com/zhouzirui/mirror-lab/backend/internal/service/mirror"
	quizService "github.com/zhouzirui/mirror-lab/backend/internal/service/quiz"
	"github.com/zhouzirui/mirror-lab/backend/pkg/utils"
)

// Dependencies 路由依赖的服务
type Dependencies struct {
	Personas  personaModel.Store
	Chat      *chatService.Service
	Mirror    *mirrorService.Service
	Quiz      *quizService.Service
	Image     *imageService.Service
	BodyLimit int64
	Log       *slog.Logger
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	// Create handlers
	personaHandler := persona.New(deps.Personas)
	chatHandler := chat.New(deps.Chat, deps.BodyLimit, deps.Log)
	mirrorHandler := mirror.New(deps.Mirror, deps.BodyLimit, deps.Log)
	quizHandler := quiz.New(deps.Quiz, deps.BodyLimit, deps.Log)
	imageHandler := image.New(deps.Image, deps.BodyLimit, deps.Log)
	wsHandler := ws.New(deps.Chat, deps.Mirror, deps.Quiz, deps.BodyLimit, deps.Log)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		personaHandler.RegisterRoutes(api)
		chatHandler.RegisterRoutes(api)
		mirrorHandler.RegisterRoutes(api)
		quizHandler.RegisterRoutes(api)
		imageHandler.RegisterRoutes(api)
		wsHandler.RegisterRoutes(api)
	})

	return r
}
