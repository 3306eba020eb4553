package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"github.com/zhouzirui/mirror-lab/backend/internal/analysis/sentiment"
	"github.com/zhouzirui/mirror-lab/backend/internal/config"
	"github.com/zhouzirui/mirror-lab/backend/internal/handler"
	"github.com/zhouzirui/mirror-lab/backend/internal/model/persona"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/ai"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/chat"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/image"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/mirror"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/quiz"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/stance"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := logs.GetLoggerFromString(cfg.Log.Level)

	lexicons, err := sentiment.NewSet()
	if err != nil {
		log.Fatalf("failed to compile lexicons: %v", err)
	}
	personaStore := persona.NewMemoryStore(persona.Seed())

	// Initialize AI backends; missing credentials leave the keyword-only flows running
	var completer ai.Completer = ai.Unavailable{}
	var imageGenerator ai.ImageGenerator = ai.Unavailable{}
	var chatModel model.BaseChatModel

	if cfg.AI.Enabled() {
		chatModel, err = cfg.AI.NewChatModel(ctx)
		if err != nil {
			logger.Warn("failed to create chat model, continuing without AI", "provider", cfg.AI.Provider, "error", err)
			chatModel = nil
		} else {
			aiService, err := ai.NewService(ctx, chatModel, cfg.AI.Timeout, logger)
			if err != nil {
				logger.Warn("failed to initialize AI service", "error", err)
				chatModel = nil
			} else {
				completer = aiService
				logger.Info("AI service initialized", "provider", cfg.AI.Provider, "model", cfg.AI.ModelName())
			}
		}

		gen, err := cfg.AI.NewImageGenerator(ctx)
		switch {
		case errors.Is(err, config.ErrImageUnsupported):
			logger.Info("image generation unavailable for provider", "provider", cfg.AI.Provider)
			imageGenerator = ai.ImagesUnsupported{}
		case err != nil:
			logger.Warn("failed to create image generator", "error", err)
		default:
			imageGenerator = gen
		}
	} else {
		logger.Warn("AI credentials not configured, model routes will return 503", "provider", cfg.AI.Provider)
	}

	// Stance classifier (LLM with keyword fallback)
	stanceSvc, err := stance.NewService(ctx, chatModel, cfg.AI.StanceLLMEnabled, cfg.AI.Timeout, logger)
	if err != nil {
		logger.Warn("failed to initialize stance classifier, using keywords only", "error", err)
		stanceSvc = nil
	} else if stanceSvc.Enabled() {
		logger.Info("stance classifier uses the chat model")
	}

	chatService := chat.NewService(completer, personaStore, lexicons, stanceSvc, logger)

	router := handler.NewRouter(handler.Dependencies{
		Personas:  personaStore,
		Chat:      chatService,
		Mirror:    mirror.NewService(chatService, lexicons, stanceSvc, logger),
		Quiz:      quiz.NewService(completer, cfg.Quiz.TotalQuestions, logger),
		Image:     image.NewService(imageGenerator, cfg.AI.Timeout, logger),
		BodyLimit: cfg.Server.BodyLimit,
		Log:       logger,
	})

	startServer(ctx, cfg.Server, router, logger)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logger *slog.Logger) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("mirror-lab backend listening", "addr", addr)
	if err := runServer(ctx, srv); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
