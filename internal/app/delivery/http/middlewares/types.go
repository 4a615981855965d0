package middlewares

import (
	"heallink-service/internal/app/config"
	"heallink-service/internal/app/contracts"
	"time"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log               *zap.Logger
	SessionService    contracts.SessionService
	InternalConfig    *config.InternalConfig
	CredentialLimiter *CredentialLimiter
}

func NewMiddlewares(logger *zap.Logger, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	attempts := internalConfig.App.CredentialAttemptsPerMinute
	if attempts <= 0 {
		attempts = 10
	}
	blockTime := time.Duration(internalConfig.App.CredentialBlockTimeInMinutes) * time.Minute
	if blockTime <= 0 {
		blockTime = 15 * time.Minute
	}

	return &Middlewares{
		Log:               logger,
		SessionService:    sessionService,
		InternalConfig:    internalConfig,
		CredentialLimiter: NewCredentialLimiter(attempts, blockTime),
	}
}
