package quiz

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zhouzirui/mirror-lab/backend/internal/service/ai/mocks"
	quizservice "github.com/zhouzirui/mirror-lab/backend/internal/service/quiz"
)

func setupRouter(t *testing.T) (*chi.Mux, *mocks.MockCompleter) {
	t.Helper()
	completer := mocks.NewMockCompleter(gomock.NewController(t))
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	handler := New(quizservice.NewService(completer, 10, log), 1<<20, log)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, completer
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestNextQuestion(t *testing.T) {
	r, completer := setupRouter(t)
	completer.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("Do you think AI bias is a serious problem?", nil)

	resp := post(r, "/quiz/ai", `{"history":[{"question":"Do you trust AI?","userAnswer":"no"},{"question":"Next?","userAnswer":null}]}`)
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"nextQuestion":"Do you think AI bias is a serious problem?","tone":"negative"}`, resp.Body.String())
}

func TestNextQuestionValidation(t *testing.T) {
	r, _ := setupRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing history", body: `{}`},
		{name: "bad answer", body: `{"history":[{"question":"q","userAnswer":"maybe"}]}`},
		{name: "missing question", body: `{"history":[{"userAnswer":"yes"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, http.StatusBadRequest, post(r, "/quiz/ai", tt.body).Code)
		})
	}
}

func TestResult(t *testing.T) {
	r, _ := setupRouter(t)

	resp := post(r, "/quiz/result", `{"history":[
		{"question":"q1","userAnswer":"yes"},
		{"question":"q2","userAnswer":"yes"},
		{"question":"q3","userAnswer":"no"},
		{"question":"q4","userAnswer":"yes"}],"total":4}`)
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{
		"total":4,"answered":4,"yesCount":3,"noCount":1,
		"yesPercentage":75,"noPercentage":25,
		"level":{"text":"AI Optimist","color":"#84cc16"},
		"theme":"light","completed":true}`, resp.Body.String())
}

func TestResultRejectsNegativeTotal(t *testing.T) {
	r, _ := setupRouter(t)
	require.Equal(t, http.StatusBadRequest, post(r, "/quiz/result", `{"history":[],"total":-1}`).Code)
}
