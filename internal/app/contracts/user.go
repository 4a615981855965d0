package contracts

import (
	"context"
	"heallink-service/internal/app/models"
)

type UserRepository interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindUserByHealthID(ctx context.Context, healthID string) (*models.User, error)
}
