package exchange

import (
	"context"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/dto/requests"
	"heallink-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type exchangeUsecase struct {
	UserRepository    contracts.UserRepository
	PatientRepository contracts.PatientRepository
	ExchangeClient    contracts.ExchangeClient
	Log               *zap.Logger
}

func NewExchangeUsecase(
	userRepository contracts.UserRepository,
	patientRepository contracts.PatientRepository,
	exchangeClient contracts.ExchangeClient,
	logger *zap.Logger,
) contracts.ExchangeUsecase {
	return &exchangeUsecase{
		UserRepository:    userRepository,
		PatientRepository: patientRepository,
		ExchangeClient:    exchangeClient,
		Log:               logger,
	}
}

func (uc *exchangeUsecase) CreateHealthID(ctx context.Context, request *requests.CreateHealthIDOnExchange) (*responses.ExchangeHealthIDCreation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("exchangeUsecase.CreateHealthID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	creation, err := uc.ExchangeClient.CreateHealthID(ctx, request.Mobile, request.Aadhaar)
	if err != nil {
		uc.Log.Warn("exchange health-ID creation degraded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return creation, nil
}

// LookupPatient prefers a locally registered patient; the exchange is
// only asked for health IDs this deployment has never seen.
func (uc *exchangeUsecase) LookupPatient(ctx context.Context, healthID string) (*responses.ExchangePatientSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("exchangeUsecase.LookupPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindUserByHealthID(ctx, healthID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		summary := &responses.ExchangePatientSummary{
			HealthID: healthID,
			Name:     user.Username,
		}
		if patient, err := uc.PatientRepository.FindPatientByUserID(ctx, user.ID); err == nil && patient != nil {
			summary.Name = patient.Name
			summary.Mobile = patient.Phone
			summary.Address = patient.Address
		}
		return summary, nil
	}

	summary, err := uc.ExchangeClient.LookupPatient(ctx, healthID)
	if err != nil {
		uc.Log.Warn("exchange patient lookup degraded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return summary, nil
}

func (uc *exchangeUsecase) VerifyPrescription(ctx context.Context, request *requests.VerifyPrescriptionOnExchange) (*responses.ExchangeVerification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("exchangeUsecase.VerifyPrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	verification, err := uc.ExchangeClient.VerifyPrescription(ctx, request.PrescriptionRef, request.PatientHealthID)
	if err != nil {
		uc.Log.Warn("exchange prescription verification degraded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return verification, nil
}
