package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zhouzirui/mirror-lab/backend/internal/analysis/sentiment"
	"github.com/zhouzirui/mirror-lab/backend/internal/model/persona"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/ai"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/ai/mocks"
	chatService "github.com/zhouzirui/mirror-lab/backend/internal/service/chat"
	mirrorService "github.com/zhouzirui/mirror-lab/backend/internal/service/mirror"
	quizService "github.com/zhouzirui/mirror-lab/backend/internal/service/quiz"
)

type frame struct {
	Type  string          `json:"type"`
	ID    string          `json:"id"`
	Route string          `json:"route"`
	Data  json.RawMessage `json:"data"`
}

func newHandler(t *testing.T, completer ai.Completer) *Handler {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	lexicons, err := sentiment.NewSet()
	require.NoError(t, err)

	chatSvc := chatService.NewService(completer, persona.NewMemoryStore(persona.Seed()), lexicons, nil, log)
	mirrorSvc := mirrorService.NewService(chatSvc, lexicons, nil, log)
	quizSvc := quizService.NewService(completer, 10, log)
	return New(chatSvc, mirrorSvc, quizSvc, 1<<20, log)
}

func dial(t *testing.T, h *Handler) *websocket.Conn {
	t.Helper()
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg any) frame {
	t.Helper()
	require.NoError(t, conn.WriteJSON(msg))
	var out frame
	require.NoError(t, conn.ReadJSON(&out))
	return out
}

func TestRequestFrameGetsResponseFrame(t *testing.T) {
	completer := mocks.NewMockCompleter(gomock.NewController(t))
	completer.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("빨간색입니다", nil)
	conn := dial(t, newHandler(t, completer))

	out := roundTrip(t, conn, map[string]any{
		"type":    TypeRequest,
		"id":      "req-1",
		"route":   RouteChat,
		"payload": map[string]any{"messages": []map[string]string{{"role": "user", "content": "하늘은?"}}},
	})

	require.Equal(t, TypeResponse, out.Type)
	require.Equal(t, "req-1", out.ID)
	require.Equal(t, RouteChat, out.Route)
	require.JSONEq(t, `{"response":"빨간색입니다"}`, string(out.Data))
}

func TestMirrorTurnWithoutModelCall(t *testing.T) {
	conn := dial(t, newHandler(t, ai.Unavailable{}))

	out := roundTrip(t, conn, map[string]any{
		"type":    TypeRequest,
		"id":      "turn-1",
		"route":   RouteMirrorTurn,
		"payload": map[string]any{"input": "좋아요"},
	})

	require.Equal(t, TypeResponse, out.Type)
	var data mirrorService.TurnResponse
	require.NoError(t, json.Unmarshal(out.Data, &data))
	require.Equal(t, mirrorService.InterventionChamberSelected, data.Intervention)
}

func TestErrorFrames(t *testing.T) {
	conn := dial(t, newHandler(t, ai.Unavailable{}))

	tests := []struct {
		name       string
		msg        map[string]any
		wantStatus int
	}{
		{
			name:       "unknown type",
			msg:        map[string]any{"type": "subscribe", "id": "a", "route": RouteChat},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown route",
			msg:        map[string]any{"type": TypeRequest, "id": "b", "route": "weather"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing payload",
			msg:        map[string]any{"type": TypeRequest, "id": "c", "route": RouteDual},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "chamber required",
			msg:        map[string]any{"type": TypeRequest, "id": "d", "route": RouteMirror, "payload": map[string]any{"messages": []map[string]string{{"role": "user", "content": "x"}}}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "model unavailable",
			msg:        map[string]any{"type": TypeRequest, "id": "e", "route": RouteQuiz, "payload": map[string]any{"history": []any{}}},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := roundTrip(t, conn, tt.msg)
			require.Equal(t, TypeError, out.Type)
			require.Equal(t, tt.msg["id"], out.ID)

			var data errorData
			require.NoError(t, json.Unmarshal(out.Data, &data))
			require.Equal(t, tt.wantStatus, data.Status)
			require.NotEmpty(t, data.Error)
		})
	}
}

func TestDispatchAssignsMissingID(t *testing.T) {
	h := newHandler(t, ai.Unavailable{})
	out := h.dispatch(context.Background(), h.log, inboundMessage{Type: TypeRequest, Route: RouteQuizResult, Payload: json.RawMessage(`{"history":[]}`)})

	require.Equal(t, TypeResponse, out.Type)
	require.NotEmpty(t, out.ID)
}

func TestOversizedFrameClosesConnection(t *testing.T) {
	h := newHandler(t, ai.Unavailable{})
	h.readLimit = 1024
	conn := dial(t, h)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"type":    TypeRequest,
		"id":      "big",
		"route":   RouteQuizResult,
		"payload": map[string]any{"history": []map[string]any{{"question": strings.Repeat("q", 4096), "userAnswer": "yes"}}},
	}))

	var out frame
	err := conn.ReadJSON(&out)
	require.Error(t, err)
	require.True(t, websocket.IsCloseError(err, websocket.CloseMessageTooBig), "unexpected error: %v", err)
}

func TestSlowRequestKeepsConnectionOpen(t *testing.T) {
	completer := mocks.NewMockCompleter(gomock.NewController(t))
	gomock.InOrder(
		completer.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, ai.Prompt) (string, error) {
			time.Sleep(300 * time.Millisecond)
			return "slow", nil
		}),
		completer.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("fast", nil),
	)

	h := newHandler(t, completer)
	h.pongWait = 100 * time.Millisecond
	conn := dial(t, h)

	request := func(id string) map[string]any {
		return map[string]any{
			"type":    TypeRequest,
			"id":      id,
			"route":   RouteChat,
			"payload": map[string]any{"messages": []map[string]string{{"role": "user", "content": "hi"}}},
		}
	}

	first := roundTrip(t, conn, request("one"))
	require.Equal(t, TypeResponse, first.Type)
	require.JSONEq(t, `{"response":"slow"}`, string(first.Data))

	second := roundTrip(t, conn, request("two"))
	require.Equal(t, TypeResponse, second.Type)
	require.JSONEq(t, `{"response":"fast"}`, string(second.Data))
}
