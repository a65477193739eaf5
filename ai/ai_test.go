package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockModel struct{ mock.Mock }

func (m *mockModel) Chat(ctx context.Context, messages []Message) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

func (m *mockModel) Name() string { return "test-model via Ollama" }

func TestRecover(t *testing.T) {
	fallback := func(err error) string { return "fallback: " + err.Error() }

	assert.Equal(t, "ok", Recover("ok", func() (string, error) { return "ok", nil }, fallback))
	assert.Equal(t, "fallback: boom", Recover("err", func() (string, error) { return "", errors.New("boom") }, fallback))
	assert.Equal(t, "fallback: panic: kaput", Recover("panic", func() (string, error) { panic("kaput") }, fallback))
}

func TestBuildPrompt(t *testing.T) {
	assert.Equal(t, "What is asthma?", BuildPrompt("What is asthma?", ""))
	assert.Equal(t, "Context: Patient: Ada\n\nUser query: Any risks?", BuildPrompt("Any risks?", "Patient: Ada"))
}

func TestCleanResponse(t *testing.T) {
	assert.Equal(t, "Drink water.", CleanResponse("  <p>Drink <b>water</b>.</p>\n"))
	// only the tags go; text between them stays
	assert.Equal(t, "hmm Drink water.", CleanResponse("<think>hmm</think> Drink water."))
}

func TestAssistant_Query(t *testing.T) {
	m := &mockModel{}
	m.On("Chat", mock.Anything, mock.MatchedBy(func(msgs []Message) bool {
		return len(msgs) == 2 && msgs[0].Role == "system" && msgs[1].Content == "Context: c\n\nUser query: q"
	})).Return("<p>Rest well.</p>", nil)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := NewAssistant(m)
	a.now = func() time.Time { return now }

	resp := a.Query(context.Background(), "q", "c")
	assert.Equal(t, "Rest well.", resp.Response)
	assert.Equal(t, []string{"test-model via Ollama"}, resp.Sources)
	assert.Equal(t, now, resp.Timestamp)
	m.AssertExpectations(t)
}

func TestAssistant_FallsBackWhenModelFails(t *testing.T) {
	m := &mockModel{}
	m.On("Chat", mock.Anything, mock.Anything).Return("", errors.New("connection refused"))

	resp := NewAssistant(m).Query(context.Background(), "q", "")
	assert.Equal(t, FallbackMessage, resp.Response)
	assert.Equal(t, []string{FallbackSource}, resp.Sources)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestOllamaClient_Chat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		var req api.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gemma3:1b", req.Model)
		require.NotNil(t, req.Stream)
		assert.False(t, *req.Stream)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "hi", req.Messages[1].Content)
		_ = json.NewEncoder(w).Encode(api.ChatResponse{
			Model:   "gemma3:1b",
			Message: api.Message{Role: "assistant", Content: "hello"},
			Done:    true,
		})
	}))
	defer srv.Close()

	client, err := NewOllamaClient(srv.URL+"/", "gemma3:1b", time.Second)
	require.NoError(t, err)
	got, err := client.Chat(context.Background(), []Message{{Role: "system"}, {Role: "user", Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "gemma3:1b via Ollama", client.Name())
}

func TestOllamaClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model 'missing' not found"}` + "\n"))
	}))
	defer srv.Close()

	client, err := NewOllamaClient(srv.URL, "missing", time.Second)
	require.NoError(t, err)
	_, err = client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestNewOllamaClient_BadURL(t *testing.T) {
	_, err := NewOllamaClient("http://[::1", "m", time.Second)
	assert.Error(t, err)
}
