package contracts

import (
	"context"
	"heallink-service/internal/app/models"
	"time"
)

type AppointmentRepository interface {
	FindAppointmentsByDoctorIDBetween(ctx context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error)
	FindAppointmentsByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
}

type AppointmentUsecase interface {
	ListTodayForDoctor(ctx context.Context, session *models.Session) ([]models.Appointment, error)
	ListForPatient(ctx context.Context, session *models.Session) ([]models.Appointment, error)
}
