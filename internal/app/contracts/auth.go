package contracts

import (
	"context"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/dto/requests"
	"heallink-service/internal/pkg/dto/responses"
)

// AuthRepository persists the account and its role profile in one
// transaction: a profile insert that fails must roll back the user.
// buildProfile receives the freshly assigned user ID and returns one of
// models.DoctorProfile / PatientProfile / PharmacyProfile.
type AuthRepository interface {
	CreateUserWithProfile(ctx context.Context, user *models.User, buildProfile func(userID string) interface{}) (userID string, profileID string, err error)
}

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, session *models.Session) (*responses.Account, error)
}
