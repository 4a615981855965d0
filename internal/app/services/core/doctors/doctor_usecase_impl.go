package doctors

import (
	"context"
	"fmt"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		Log:              logger,
	}
}

func (uc *doctorUsecase) GetProfile(ctx context.Context, session *models.Session) (*models.DoctorProfile, error) {
	profile, err := uc.DoctorRepository.FindDoctorByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotFound(fmt.Errorf("no doctor profile for user %s", session.UserID), constvars.RoleDoctor)
	}
	return profile, nil
}
