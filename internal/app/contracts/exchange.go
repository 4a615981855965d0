package contracts

import (
	"context"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/dto/requests"
	"heallink-service/internal/pkg/dto/responses"
)

// ExchangeClient talks to the national health-ID exchange through its
// wrapper service. Every call is bounded by the configured timeout and
// degrades to a deterministic mock payload when the wrapper is
// unreachable; the error branch is reserved for callers that want to
// log the degradation.
type ExchangeClient interface {
	CreateHealthID(ctx context.Context, mobile, aadhaar string) (*responses.ExchangeHealthIDCreation, error)
	ForwardPrescription(ctx context.Context, prescription *models.Prescription, patientHealthID string) (*responses.ExchangeForwardResult, error)
	ForwardDispensation(ctx context.Context, prescription *models.Prescription, patientHealthID string) (*responses.ExchangeForwardResult, error)
	LookupPatient(ctx context.Context, healthID string) (*responses.ExchangePatientSummary, error)
	RequestConsent(ctx context.Context, consent *models.ConsentRequest, patientHealthID string) (*responses.ExchangeConsentResult, error)
	VerifyPrescription(ctx context.Context, prescriptionRef, patientHealthID string) (*responses.ExchangeVerification, error)
}

type ExchangeUsecase interface {
	CreateHealthID(ctx context.Context, request *requests.CreateHealthIDOnExchange) (*responses.ExchangeHealthIDCreation, error)
	LookupPatient(ctx context.Context, healthID string) (*responses.ExchangePatientSummary, error)
	VerifyPrescription(ctx context.Context, request *requests.VerifyPrescriptionOnExchange) (*responses.ExchangeVerification, error)
}
