package contracts

import (
	"context"
	"heallink-service/internal/app/models"
)

type PatientRepository interface {
	FindPatientByUserID(ctx context.Context, userID string) (*models.PatientProfile, error)
	FindPatientByID(ctx context.Context, patientID string) (*models.PatientProfile, error)
}

type PatientUsecase interface {
	GetProfile(ctx context.Context, session *models.Session) (*models.PatientProfile, error)
}
