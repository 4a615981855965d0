package contracts

import (
	"context"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/dto/requests"
	"time"
)

type ConsentRepository interface {
	CreateConsentRequest(ctx context.Context, consent *models.ConsentRequest) (string, error)
	FindConsentRequestByID(ctx context.Context, consentID string) (*models.ConsentRequest, error)
	FindConsentRequestsByPatientID(ctx context.Context, patientID string) ([]models.ConsentRequest, error)
	// RespondPendingConsentRequest settles a pending request owned by the
	// given patient in one conditional update; (nil, nil) when nothing
	// matched.
	RespondPendingConsentRequest(ctx context.Context, consentID, patientID, status string, respondedAt time.Time) (*models.ConsentRequest, error)
}

type ConsentUsecase interface {
	CreateConsentRequest(ctx context.Context, session *models.Session, request *requests.CreateConsentRequest) (*models.ConsentRequest, error)
	ListForPatient(ctx context.Context, session *models.Session) ([]models.ConsentRequest, error)
	RespondConsentRequest(ctx context.Context, session *models.Session, consentID string, request *requests.RespondConsentRequest) (*models.ConsentRequest, error)
}
