package contracts

import (
	"context"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/dto/responses"
)

type HealthRecordRepository interface {
	FindHealthRecordsByPatientID(ctx context.Context, patientID string) ([]models.HealthRecord, error)
}

type HealthRecordUsecase interface {
	ListForPatient(ctx context.Context, session *models.Session) ([]responses.HealthRecord, error)
}
