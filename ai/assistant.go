// Package ai forwards staff questions to a language model. The assistant
// never reports an error: when the model cannot answer, a fixed apology is
// returned in its place.
package ai

import (
	"context"
	"regexp"
	"strings"
	"time"

	"HospitalHub/models"
)

const SystemPrompt = `You are a helpful health information assistant for a hospital management system.
Provide accurate general health information and always recommend consulting
with healthcare professionals for personal medical advice.
Do not diagnose conditions, prescribe medications, or provide treatment plans.
Be clear about the limitations of AI assistance in healthcare.

When responding to queries about hospital operations, patient records, or appointments,
provide helpful information based on general healthcare best practices.`

const (
	FallbackMessage = "I'm sorry, I'm currently unable to process your request. The AI service might be unavailable. Please try again later or contact system administrator."
	FallbackSource  = "Error fallback"
)

var tagPattern = regexp.MustCompile(`<.*?>`)

type Assistant struct {
	model ChatModel
	now   func() time.Time
}

func NewAssistant(model ChatModel) *Assistant {
	return &Assistant{model: model, now: time.Now}
}

// BuildPrompt prefixes the query with the context when one is given.
func BuildPrompt(query string, contextText string) string {
	if contextText != "" {
		return "Context: " + contextText + "\n\nUser query: " + query
	}
	return query
}

// CleanResponse removes markup tags and surrounding whitespace.
func CleanResponse(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}

func (a *Assistant) Query(ctx context.Context, query string, contextText string) models.AIResponse {
	messages := []Message{
		{Role: "system", Content: SystemPrompt},
		{Role: "user", Content: BuildPrompt(query, contextText)},
	}
	return Recover("ai.query", func() (models.AIResponse, error) {
		answer, err := a.model.Chat(ctx, messages)
		if err != nil {
			return models.AIResponse{}, err
		}
		return models.AIResponse{
			Response:  CleanResponse(answer),
			Sources:   []string{a.model.Name()},
			Timestamp: a.now(),
		}, nil
	}, func(error) models.AIResponse {
		return models.AIResponse{
			Response:  FallbackMessage,
			Sources:   []string{FallbackSource},
			Timestamp: a.now(),
		}
	})
}
