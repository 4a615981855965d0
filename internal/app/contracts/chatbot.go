package contracts

import (
	"context"
	"heallink-service/internal/pkg/dto/requests"
	"heallink-service/internal/pkg/dto/responses"
)

type ChatbotUsecase interface {
	Query(ctx context.Context, request *requests.ChatbotQuery) (*responses.ChatbotReply, error)
	PatientSummary(ctx context.Context, patientID string) (*responses.PatientSummary, error)
}
