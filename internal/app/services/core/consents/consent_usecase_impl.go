package consents

import (
	"context"
	"fmt"
	"heallink-service/internal/app/config"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/dto/requests"
	"heallink-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type consentUsecase struct {
	ConsentRepository contracts.ConsentRepository
	PatientRepository contracts.PatientRepository
	UserRepository    contracts.UserRepository
	ExchangeClient    contracts.ExchangeClient
	EventPublisher    contracts.EventPublisher
	ExchangeTimeout   time.Duration
	Log               *zap.Logger
}

func NewConsentUsecase(
	consentRepository contracts.ConsentRepository,
	patientRepository contracts.PatientRepository,
	userRepository contracts.UserRepository,
	exchangeClient contracts.ExchangeClient,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ConsentUsecase {
	return &consentUsecase{
		ConsentRepository: consentRepository,
		PatientRepository: patientRepository,
		UserRepository:    userRepository,
		ExchangeClient:    exchangeClient,
		EventPublisher:    eventPublisher,
		ExchangeTimeout:   time.Duration(internalConfig.Exchange.RequestTimeoutInSeconds) * time.Second,
		Log:               logger,
	}
}

func (uc *consentUsecase) CreateConsentRequest(ctx context.Context, session *models.Session, request *requests.CreateConsentRequest) (*models.ConsentRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consentUsecase.CreateConsentRequest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	patient, err := uc.PatientRepository.FindPatientByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(fmt.Errorf("patient %s does not exist", request.PatientID))
	}

	dataTypes := request.DataTypes
	if len(dataTypes) == 0 {
		dataTypes = constvars.DefaultConsentDataTypes
	}

	consent := &models.ConsentRequest{
		DoctorID:    session.ProfileID,
		PatientID:   request.PatientID,
		Purpose:     request.Purpose,
		DataTypes:   dataTypes,
		Status:      constvars.ConsentStatusPending,
		RequestedAt: time.Now(),
	}

	consentID, err := uc.ConsentRepository.CreateConsentRequest(ctx, consent)
	if err != nil {
		return nil, err
	}
	consent.ID = consentID

	if err := uc.EventPublisher.Publish(ctx, constvars.EventConsentRequested, consent); err != nil {
		uc.Log.Warn("consent requested event not published",
			zap.String(constvars.LoggingConsentIDKey, consentID),
			zap.Error(err),
		)
	}

	healthID := request.PatientHealthID
	if healthID == "" {
		healthID = uc.patientHealthID(ctx, patient)
	}
	go uc.registerConsentOnExchange(*consent, healthID)

	return consent, nil
}

func (uc *consentUsecase) ListForPatient(ctx context.Context, session *models.Session) ([]models.ConsentRequest, error) {
	return uc.ConsentRepository.FindConsentRequestsByPatientID(ctx, session.ProfileID)
}

func (uc *consentUsecase) RespondConsentRequest(ctx context.Context, session *models.Session, consentID string, request *requests.RespondConsentRequest) (*models.ConsentRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consentUsecase.RespondConsentRequest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsentIDKey, consentID),
	)

	updated, err := uc.ConsentRepository.RespondPendingConsentRequest(ctx, consentID, session.ProfileID, request.Status, time.Now())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Nothing matched: tell missing, foreign, and settled apart.
		existing, err := uc.ConsentRepository.FindConsentRequestByID(ctx, consentID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, exceptions.ErrConsentRequestNotExist(fmt.Errorf("consent request %s does not exist", consentID))
		}
		if existing.PatientID != session.ProfileID {
			return nil, exceptions.ErrConsentWrongPatient(fmt.Errorf("consent request %s targets another patient", consentID))
		}
		return nil, exceptions.ErrConsentAlreadyResponded(fmt.Errorf("consent request %s is %s", consentID, existing.Status))
	}

	if err := uc.EventPublisher.Publish(ctx, constvars.EventConsentResponded, updated); err != nil {
		uc.Log.Warn("consent responded event not published",
			zap.String(constvars.LoggingConsentIDKey, consentID),
			zap.Error(err),
		)
	}

	return updated, nil
}

func (uc *consentUsecase) registerConsentOnExchange(consent models.ConsentRequest, patientHealthID string) {
	ctx, cancel := context.WithTimeout(context.Background(), uc.ExchangeTimeout)
	defer cancel()

	_, err := uc.ExchangeClient.RequestConsent(ctx, &consent, patientHealthID)
	if err != nil {
		uc.Log.Warn("consent registration on exchange degraded",
			zap.String(constvars.LoggingConsentIDKey, consent.ID),
			zap.Error(err),
		)
	}
}

func (uc *consentUsecase) patientHealthID(ctx context.Context, patient *models.PatientProfile) string {
	user, err := uc.UserRepository.FindUserByID(ctx, patient.UserID)
	if err != nil || user == nil {
		return ""
	}
	return user.HealthID
}
