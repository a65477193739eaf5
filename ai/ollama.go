package ai

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatModel answers a conversation with the assistant's next message.
type ChatModel interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	Name() string
}

// OllamaClient talks to a local Ollama server through its chat endpoint.
type OllamaClient struct {
	client *api.Client
	model  string
}

func NewOllamaClient(baseURL, model string, timeout time.Duration) (*OllamaClient, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse ollama url: %w", err)
	}
	return &OllamaClient{
		client: api.NewClient(base, &http.Client{Timeout: timeout}),
		model:  model,
	}, nil
}

func (o *OllamaClient) Name() string {
	return o.model + " via Ollama"
}

/*
* Send the whole conversation with streaming off
* The single response carries the complete assistant message
 */
func (o *OllamaClient) Chat(ctx context.Context, messages []Message) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model:    o.model,
		Messages: make([]api.Message, len(messages)),
		Stream:   &stream,
	}
	for i, m := range messages {
		req.Messages[i] = api.Message{Role: m.Role, Content: m.Content}
	}

	var answer strings.Builder
	err := o.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		answer.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama chat: %w", err)
	}
	return answer.String(), nil
}
