package contracts

import (
	"context"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/dto/requests"
	"time"
)

type PrescriptionRepository interface {
	CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error)
	FindPrescriptionByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	FindPrescriptionsByDoctorID(ctx context.Context, doctorID string) ([]models.Prescription, error)
	FindPrescriptionsByPatientID(ctx context.Context, patientID string) ([]models.Prescription, error)
	FindPendingPrescriptions(ctx context.Context) ([]models.Prescription, error)
	// MarkPrescriptionDispensed flips pending to dispensed in a single
	// conditional update. It returns (nil, nil) when no pending document
	// matched, leaving the caller to tell missing from already-settled.
	MarkPrescriptionDispensed(ctx context.Context, prescriptionID, pharmacyID string, dispensedMedicines []models.Medicine, dispensedAt time.Time) (*models.Prescription, error)
	SetPrescriptionExchangeRef(ctx context.Context, prescriptionID, exchangeRef string) error
}

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescription) (*models.Prescription, error)
	ListForDoctor(ctx context.Context, session *models.Session) ([]models.Prescription, error)
	ListForPatient(ctx context.Context, session *models.Session) ([]models.Prescription, error)
	ListPending(ctx context.Context) ([]models.Prescription, error)
	DispensePrescription(ctx context.Context, session *models.Session, prescriptionID string, request *requests.DispensePrescription) (*models.Prescription, error)
}
