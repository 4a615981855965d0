package session

import (
	"context"
	"fmt"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

const sessionKeyPrefix = "session:"

type sessionService struct {
	RedisRepository contracts.RedisRepository
	ExpiryTime      time.Duration
}

func NewSessionService(redisRepository contracts.RedisRepository, expiryTimeInHours int) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		ExpiryTime:      time.Duration(expiryTimeInHours) * time.Hour,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	session.ExpiresAt = time.Now().Add(s.ExpiryTime)
	return s.RedisRepository.Set(ctx, sessionKeyPrefix+session.SessionID, session, s.ExpiryTime)
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := s.RedisRepository.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionNotFound(fmt.Errorf("session %s not found", sessionID))
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(data), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, sessionKeyPrefix+sessionID)
}
