package appointments

import (
	"context"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/models"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	Location              *time.Location
	Log                   *zap.Logger
}

func NewAppointmentUsecase(appointmentRepository contracts.AppointmentRepository, location *time.Location, logger *zap.Logger) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		Location:              location,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) ListTodayForDoctor(ctx context.Context, session *models.Session) ([]models.Appointment, error) {
	now := time.Now().In(uc.Location)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.Location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	return uc.AppointmentRepository.FindAppointmentsByDoctorIDBetween(ctx, session.ProfileID, dayStart, dayEnd)
}

func (uc *appointmentUsecase) ListForPatient(ctx context.Context, session *models.Session) ([]models.Appointment, error) {
	return uc.AppointmentRepository.FindAppointmentsByPatientID(ctx, session.ProfileID)
}
