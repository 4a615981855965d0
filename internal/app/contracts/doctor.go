package contracts

import (
	"context"
	"heallink-service/internal/app/models"
)

type DoctorRepository interface {
	FindDoctorByUserID(ctx context.Context, userID string) (*models.DoctorProfile, error)
	FindDoctorByID(ctx context.Context, doctorID string) (*models.DoctorProfile, error)
}

type DoctorUsecase interface {
	GetProfile(ctx context.Context, session *models.Session) (*models.DoctorProfile, error)
}
