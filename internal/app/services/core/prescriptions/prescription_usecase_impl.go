package prescriptions

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

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	PatientRepository      contracts.PatientRepository
	UserRepository         contracts.UserRepository
	ExchangeClient         contracts.ExchangeClient
	EventPublisher         contracts.EventPublisher
	ExchangeTimeout        time.Duration
	Log                    *zap.Logger
}

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	patientRepository contracts.PatientRepository,
	userRepository contracts.UserRepository,
	exchangeClient contracts.ExchangeClient,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionRepository: prescriptionRepository,
		PatientRepository:      patientRepository,
		UserRepository:         userRepository,
		ExchangeClient:         exchangeClient,
		EventPublisher:         eventPublisher,
		ExchangeTimeout:        time.Duration(internalConfig.Exchange.RequestTimeoutInSeconds) * time.Second,
		Log:                    logger,
	}
}

func (uc *prescriptionUsecase) CreatePrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescription) (*models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.CreatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	if len(request.Medicines) == 0 {
		return nil, exceptions.ErrMedicinesRequired(fmt.Errorf("medicines list is empty"))
	}

	patient, err := uc.PatientRepository.FindPatientByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(fmt.Errorf("patient %s does not exist", request.PatientID))
	}

	diagnosis := request.Diagnosis
	if diagnosis == "" {
		diagnosis = constvars.DefaultDiagnosis
	}
	instructions := request.Instructions
	if instructions == "" {
		instructions = constvars.DefaultInstructions
	}

	prescription := &models.Prescription{
		DoctorID:     session.ProfileID,
		PatientID:    request.PatientID,
		Medicines:    toModelMedicines(request.Medicines),
		Diagnosis:    diagnosis,
		Instructions: instructions,
		Status:       constvars.PrescriptionStatusPending,
		CreatedAt:    time.Now(),
	}

	prescriptionID, err := uc.PrescriptionRepository.CreatePrescription(ctx, prescription)
	if err != nil {
		return nil, err
	}
	prescription.ID = prescriptionID

	if err := uc.EventPublisher.Publish(ctx, constvars.EventPrescriptionCreated, prescription); err != nil {
		uc.Log.Warn("prescription created event not published",
			zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
			zap.Error(err),
		)
	}

	healthID := request.PatientHealthID
	if healthID == "" {
		healthID = uc.patientHealthID(ctx, patient)
	}
	go uc.forwardPrescription(*prescription, healthID)

	return prescription, nil
}

func (uc *prescriptionUsecase) ListForDoctor(ctx context.Context, session *models.Session) ([]models.Prescription, error) {
	return uc.PrescriptionRepository.FindPrescriptionsByDoctorID(ctx, session.ProfileID)
}

func (uc *prescriptionUsecase) ListForPatient(ctx context.Context, session *models.Session) ([]models.Prescription, error) {
	return uc.PrescriptionRepository.FindPrescriptionsByPatientID(ctx, session.ProfileID)
}

func (uc *prescriptionUsecase) ListPending(ctx context.Context) ([]models.Prescription, error) {
	return uc.PrescriptionRepository.FindPendingPrescriptions(ctx)
}

func (uc *prescriptionUsecase) DispensePrescription(ctx context.Context, session *models.Session, prescriptionID string, request *requests.DispensePrescription) (*models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.DispensePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	dispensed := toModelMedicines(request.DispensedMedicines)
	updated, err := uc.PrescriptionRepository.MarkPrescriptionDispensed(ctx, prescriptionID, session.ProfileID, dispensed, time.Now())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		existing, err := uc.PrescriptionRepository.FindPrescriptionByID(ctx, prescriptionID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, exceptions.ErrPrescriptionNotExist(fmt.Errorf("prescription %s does not exist", prescriptionID))
		}
		return nil, exceptions.ErrPrescriptionNotPending(fmt.Errorf("prescription %s is %s", prescriptionID, existing.Status))
	}

	if err := uc.EventPublisher.Publish(ctx, constvars.EventPrescriptionDispensed, updated); err != nil {
		uc.Log.Warn("prescription dispensed event not published",
			zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
			zap.Error(err),
		)
	}

	healthID := ""
	if patient, err := uc.PatientRepository.FindPatientByID(ctx, updated.PatientID); err == nil && patient != nil {
		healthID = uc.patientHealthID(ctx, patient)
	}
	go uc.forwardDispensation(*updated, healthID)

	return updated, nil
}

// forwardPrescription pushes a freshly created prescription to the
// health-ID exchange without holding up the caller. Failure is logged
// and otherwise ignored.
func (uc *prescriptionUsecase) forwardPrescription(prescription models.Prescription, patientHealthID string) {
	ctx, cancel := context.WithTimeout(context.Background(), uc.ExchangeTimeout)
	defer cancel()

	result, err := uc.ExchangeClient.ForwardPrescription(ctx, &prescription, patientHealthID)
	if err != nil {
		uc.Log.Warn("prescription forward to exchange degraded",
			zap.String(constvars.LoggingPrescriptionIDKey, prescription.ID),
			zap.Error(err),
		)
	}
	if result == nil || result.ReferenceID == "" {
		return
	}

	err = uc.PrescriptionRepository.SetPrescriptionExchangeRef(ctx, prescription.ID, result.ReferenceID)
	if err != nil {
		uc.Log.Warn("failed to store exchange reference",
			zap.String(constvars.LoggingPrescriptionIDKey, prescription.ID),
			zap.String(constvars.LoggingExchangeRefKey, result.ReferenceID),
			zap.Error(err),
		)
	}
}

func (uc *prescriptionUsecase) forwardDispensation(prescription models.Prescription, patientHealthID string) {
	ctx, cancel := context.WithTimeout(context.Background(), uc.ExchangeTimeout)
	defer cancel()

	_, err := uc.ExchangeClient.ForwardDispensation(ctx, &prescription, patientHealthID)
	if err != nil {
		uc.Log.Warn("dispensation forward to exchange degraded",
			zap.String(constvars.LoggingPrescriptionIDKey, prescription.ID),
			zap.Error(err),
		)
	}
}

func (uc *prescriptionUsecase) patientHealthID(ctx context.Context, patient *models.PatientProfile) string {
	user, err := uc.UserRepository.FindUserByID(ctx, patient.UserID)
	if err != nil || user == nil {
		return ""
	}
	return user.HealthID
}

func toModelMedicines(in []requests.Medicine) []models.Medicine {
	medicines := make([]models.Medicine, 0, len(in))
	for _, m := range in {
		medicines = append(medicines, models.Medicine{
			Name:      m.Name,
			Dosage:    m.Dosage,
			Frequency: m.Frequency,
			Duration:  m.Duration,
		})
	}
	return medicines
}
