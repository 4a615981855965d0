package patients

import (
	"context"
	"fmt"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewPatientUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Log:               logger,
	}
}

func (uc *patientUsecase) GetProfile(ctx context.Context, session *models.Session) (*models.PatientProfile, error) {
	profile, err := uc.PatientRepository.FindPatientByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotFound(fmt.Errorf("no patient profile for user %s", session.UserID), constvars.RolePatient)
	}
	return profile, nil
}
