package services

import (
	"context"

	"HospitalHub/ai"
	"HospitalHub/models"
)

type AssistantService struct {
	assistant *ai.Assistant
	contexts  *ContextService
}

func NewAssistantService(assistant *ai.Assistant, contexts *ContextService) *AssistantService {
	return &AssistantService{assistant: assistant, contexts: contexts}
}

// Query answers a general question. A patient_id without an explicit
// context pulls in that patient's briefing.
func (s *AssistantService) Query(ctx context.Context, q models.AIQuery) models.AIResponse {
	contextText := ""
	if q.Context != nil {
		contextText = *q.Context
	}
	if contextText == "" && q.PatientID != nil && *q.PatientID != "" {
		contextText = s.contexts.PatientContext(ctx, *q.PatientID)
	}
	return s.assistant.Query(ctx, q.Query, contextText)
}

// QueryPatient always replaces the supplied context with the patient's briefing.
func (s *AssistantService) QueryPatient(ctx context.Context, patientID string, q models.AIQuery) models.AIResponse {
	return s.assistant.Query(ctx, q.Query, s.contexts.PatientContext(ctx, patientID))
}
