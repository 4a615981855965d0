package contracts

import (
	"context"
	"heallink-service/internal/app/models"
)

type PharmacyRepository interface {
	FindPharmacyByUserID(ctx context.Context, userID string) (*models.PharmacyProfile, error)
}

type PharmacyUsecase interface {
	GetProfile(ctx context.Context, session *models.Session) (*models.PharmacyProfile, error)
}
