package pharmacies

import (
	"context"
	"fmt"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type pharmacyUsecase struct {
	PharmacyRepository contracts.PharmacyRepository
	Log                *zap.Logger
}

func NewPharmacyUsecase(pharmacyRepository contracts.PharmacyRepository, logger *zap.Logger) contracts.PharmacyUsecase {
	return &pharmacyUsecase{
		PharmacyRepository: pharmacyRepository,
		Log:                logger,
	}
}

func (uc *pharmacyUsecase) GetProfile(ctx context.Context, session *models.Session) (*models.PharmacyProfile, error) {
	profile, err := uc.PharmacyRepository.FindPharmacyByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotFound(fmt.Errorf("no pharmacy profile for user %s", session.UserID), constvars.RolePharmacy)
	}
	return profile, nil
}
