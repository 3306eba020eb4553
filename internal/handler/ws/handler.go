package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	chatHandler "github.com/zhouzirui/mirror-lab/backend/internal/handler/chat"
	"github.com/zhouzirui/mirror-lab/backend/internal/handler/httperr"
	quizHandler "github.com/zhouzirui/mirror-lab/backend/internal/handler/quiz"
	chatService "github.com/zhouzirui/mirror-lab/backend/internal/service/chat"
	mirrorService "github.com/zhouzirui/mirror-lab/backend/internal/service/mirror"
	quizService "github.com/zhouzirui/mirror-lab/backend/internal/service/quiz"
	"github.com/zhouzirui/mirror-lab/backend/pkg/utils"
)

const (
	defaultPongWait = 60 * time.Second
	writeWait       = 10 * time.Second
)

// Frame types.
const (
	TypeRequest  = "request"
	TypeResponse = "response"
	TypeError    = "error"
)

// Routes accepted in request frames.
const (
	RouteChat        = "chat"
	RouteCrazy       = "crazy"
	RouteDual        = "dual"
	RouteMirror      = "mirror"
	RoutePerspective = "perspective"
	RouteQuiz        = "quiz"
	RouteQuizResult  = "quiz-result"
	RouteMirrorTurn  = "mirror-turn"
)

type inboundMessage struct {
	Type    string          `json:"type"`
	ID      string          `json:"id"`
	Route   string          `json:"route"`
	Payload json.RawMessage `json:"payload"`
}

type outgoingMessage struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	Route     string `json:"route,omitempty"`
	Data      any    `json:"data"`
	Timestamp int64  `json:"timestamp"`
}

type errorData struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

type routeFunc func(ctx context.Context, payload json.RawMessage) (any, error)

// Handler WebSocket处理器，每个请求帧对应一个完整的响应帧
type Handler struct {
	routes    map[string]routeFunc
	upgrader  websocket.Upgrader
	readLimit int64
	pongWait  time.Duration
	log       *slog.Logger
}

// New 创建WebSocket处理器，readLimit 限制单个入站帧的字节数
func New(chatSvc *chatService.Service, mirrorSvc *mirrorService.Service, quizSvc *quizService.Service, readLimit int64, log *slog.Logger) *Handler {
	h := &Handler{
		readLimit: readLimit,
		pongWait:  defaultPongWait,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log: log,
	}

	h.routes = map[string]routeFunc{
		RouteChat: func(ctx context.Context, raw json.RawMessage) (any, error) {
			var req chatHandler.MessagesRequest
			if err := decodePayload(raw, &req); err != nil {
				return nil, err
			}
			return chatSvc.Opposite(ctx, req.Messages)
		},
		RouteCrazy: func(ctx context.Context, raw json.RawMessage) (any, error) {
			var req chatHandler.MessagesRequest
			if err := decodePayload(raw, &req); err != nil {
				return nil, err
			}
			return chatSvc.Crazy(ctx, req.Messages)
		},
		RouteDual: func(ctx context.Context, raw json.RawMessage) (any, error) {
			var req chatHandler.MessagesRequest
			if err := decodePayload(raw, &req); err != nil {
				return nil, err
			}
			return chatSvc.Dual(ctx, req.Messages)
		},
		RouteMirror: func(ctx context.Context, raw json.RawMessage) (any, error) {
			var req chatHandler.MirrorRequest
			if err := decodePayload(raw, &req); err != nil {
				return nil, err
			}
			return chatSvc.Mirror(ctx, req.Messages, req.Chamber, req.IsFirstMessage)
		},
		RoutePerspective: func(ctx context.Context, raw json.RawMessage) (any, error) {
			var req chatHandler.MessagesRequest
			if err := decodePayload(raw, &req); err != nil {
				return nil, err
			}
			return chatSvc.Perspective(ctx, req.Messages)
		},
		RouteQuiz: func(ctx context.Context, raw json.RawMessage) (any, error) {
			var req quizHandler.NextRequest
			if err := decodePayload(raw, &req); err != nil {
				return nil, err
			}
			return quizSvc.NextQuestion(ctx, req.History)
		},
		RouteQuizResult: func(_ context.Context, raw json.RawMessage) (any, error) {
			var req quizHandler.ResultRequest
			if err := decodePayload(raw, &req); err != nil {
				return nil, err
			}
			return quizSvc.Summarize(req.History, req.Total), nil
		},
		RouteMirrorTurn: func(ctx context.Context, raw json.RawMessage) (any, error) {
			var req mirrorService.TurnRequest
			if err := decodePayload(raw, &req); err != nil {
				return nil, err
			}
			return mirrorSvc.Turn(ctx, req)
		},
	}
	return h
}

// RegisterRoutes 注册WebSocket路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws", h.handleWebSocket)
}

func decodePayload(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: payload is required", utils.ErrInvalidRequest)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: invalid payload", utils.ErrInvalidRequest)
	}
	return utils.Validate(dst)
}

// handleWebSocket 处理WebSocket连接
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	if h.readLimit > 0 {
		conn.SetReadLimit(h.readLimit)
	}

	connID := uuid.NewString()
	log := h.log.With("conn", connID)
	log.Info("websocket connected")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	go pingLoop(ctx, conn, h.pongWait*9/10)

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read error", "error", err)
			}
			return
		}
		if err := conn.WriteJSON(h.dispatch(ctx, log, msg)); err != nil {
			log.Warn("websocket write failed", "error", err)
			return
		}
		// pong 只在读取时处理，模型调用期间截止时间可能已过
		_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))
	}
}

// dispatch runs one request frame and builds its reply frame.
func (h *Handler) dispatch(ctx context.Context, log *slog.Logger, msg inboundMessage) outgoingMessage {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}

	if msg.Type != TypeRequest {
		return errorFrame(msg, http.StatusBadRequest, "unsupported message type: "+msg.Type)
	}
	route, ok := h.routes[msg.Route]
	if !ok {
		return errorFrame(msg, http.StatusBadRequest, "unknown route: "+msg.Route)
	}

	data, err := route(ctx, msg.Payload)
	if err != nil {
		status := httperr.Status(err)
		if status >= http.StatusInternalServerError {
			log.Error("websocket request failed", "route", msg.Route, "id", msg.ID, "error", err)
		}
		return errorFrame(msg, status, httperr.Message(err))
	}

	return outgoingMessage{
		Type:      TypeResponse,
		ID:        msg.ID,
		Route:     msg.Route,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}
}

func errorFrame(msg inboundMessage, status int, message string) outgoingMessage {
	return outgoingMessage{
		Type:      TypeError,
		ID:        msg.ID,
		Route:     msg.Route,
		Data:      errorData{Error: message, Status: status},
		Timestamp: time.Now().Unix(),
	}
}

// pingLoop 定期发送ping消息；WriteControl 可与 WriteJSON 并发调用
func pingLoop(ctx context.Context, conn *websocket.Conn, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
