package doctors

import (
	"context"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindDoctorByUserID(ctx context.Context, userID string) (*models.DoctorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DoctorProfile), args.Error(1)
}

func (m *MockDoctorRepository) FindDoctorByID(ctx context.Context, doctorID string) (*models.DoctorProfile, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DoctorProfile), args.Error(1)
}

func TestDoctorUsecase_GetProfile(t *testing.T) {
	session := &models.Session{UserID: "user-doc", Role: constvars.RoleDoctor}

	t.Run("existing profile is returned", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		uc := NewDoctorUsecase(doctorRepo, zap.NewNop())

		doctorRepo.On("FindDoctorByUserID", mock.Anything, "user-doc").Return(&models.DoctorProfile{
			ID:     "doc-1",
			UserID: "user-doc",
			Name:   "Dr. Smith",
		}, nil)

		profile, err := uc.GetProfile(context.Background(), session)

		assert.NoError(t, err)
		assert.Equal(t, "Dr. Smith", profile.Name)
	})

	t.Run("missing profile is not found", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		uc := NewDoctorUsecase(doctorRepo, zap.NewNop())

		doctorRepo.On("FindDoctorByUserID", mock.Anything, "user-doc").Return(nil, nil)

		_, err := uc.GetProfile(context.Background(), session)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
