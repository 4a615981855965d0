package appointments

import (
	"context"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) FindAppointmentsByDoctorIDBetween(ctx context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, doctorID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAppointmentsByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func TestAppointmentUsecase_ListTodayForDoctor(t *testing.T) {
	location, err := time.LoadLocation("Asia/Kolkata")
	assert.NoError(t, err)

	appointmentRepo := new(MockAppointmentRepository)
	uc := NewAppointmentUsecase(appointmentRepo, location, zap.NewNop())

	session := &models.Session{ProfileID: "doc-1", Role: constvars.RoleDoctor}

	appointmentRepo.On("FindAppointmentsByDoctorIDBetween", mock.Anything, "doc-1",
		mock.MatchedBy(func(from time.Time) bool {
			return from.Hour() == 0 && from.Minute() == 0 && from.Location() == location
		}),
		mock.MatchedBy(func(to time.Time) bool {
			return to.Hour() == 0 && to.Location() == location
		}),
	).Return([]models.Appointment{{ID: "appt-1", DoctorID: "doc-1"}}, nil)

	appointments, err := uc.ListTodayForDoctor(context.Background(), session)

	assert.NoError(t, err)
	assert.Len(t, appointments, 1)
	appointmentRepo.AssertExpectations(t)

	// The queried window must span exactly one calendar day.
	call := appointmentRepo.Calls[0]
	from := call.Arguments.Get(2).(time.Time)
	to := call.Arguments.Get(3).(time.Time)
	assert.Equal(t, from.AddDate(0, 0, 1), to)
}

func TestAppointmentUsecase_ListForPatient(t *testing.T) {
	appointmentRepo := new(MockAppointmentRepository)
	uc := NewAppointmentUsecase(appointmentRepo, time.UTC, zap.NewNop())

	session := &models.Session{ProfileID: "pat-1", Role: constvars.RolePatient}
	appointmentRepo.On("FindAppointmentsByPatientID", mock.Anything, "pat-1").Return([]models.Appointment{}, nil)

	appointments, err := uc.ListForPatient(context.Background(), session)

	assert.NoError(t, err)
	assert.Empty(t, appointments)
}
