package mirror

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/mirror-lab/backend/internal/analysis/sentiment"
	"github.com/zhouzirui/mirror-lab/backend/internal/model/persona"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/ai"
	chatservice "github.com/zhouzirui/mirror-lab/backend/internal/service/chat"
	mirrorservice "github.com/zhouzirui/mirror-lab/backend/internal/service/mirror"
)

// setupRouter wires the mirroring system without a model backend.
func setupRouter(t *testing.T) *chi.Mux {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	lexicons, err := sentiment.NewSet()
	require.NoError(t, err)

	chatSvc := chatservice.NewService(ai.Unavailable{}, persona.NewMemoryStore(persona.Seed()), lexicons, nil, log)
	handler := New(mirrorservice.NewService(chatSvc, lexicons, nil, log), 1<<20, log)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestIntro(t *testing.T) {
	resp := serve(setupRouter(t), http.MethodGet, "/mirror/intro", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var intro mirrorservice.Intro
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &intro))
	require.Equal(t, mirrorservice.InitialQuestion, intro.Question)
}

func TestTurnInterventionsWorkWithoutModel(t *testing.T) {
	r := setupRouter(t)

	resp := serve(r, http.MethodPost, "/mirror/turn", `{"chamber":"negative","input":"희망이 있어요"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	var turn mirrorservice.TurnResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &turn))
	require.Equal(t, mirrorservice.InterventionSystemError, turn.Intervention)
	require.True(t, turn.UserMessage.Censored)
}

func TestTurnStatuses(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "missing input", body: `{"chamber":"positive"}`, want: http.StatusBadRequest},
		{name: "blank input", body: `{"chamber":"positive","input":"   "}`, want: http.StatusBadRequest},
		{name: "unknown chamber", body: `{"chamber":"both","input":"hi"}`, want: http.StatusBadRequest},
		{name: "mirrored turn needs the model", body: `{"chamber":"positive","input":"멋져요"}`, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := serve(setupRouter(t), http.MethodPost, "/mirror/turn", tt.body)
			require.Equal(t, tt.want, resp.Code)
		})
	}
}
