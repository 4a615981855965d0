package auth

import (
	"context"
	"heallink-service/internal/app/config"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/dto/requests"
	"heallink-service/internal/pkg/exceptions"
	"heallink-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) CreateUserWithProfile(ctx context.Context, user *models.User, buildProfile func(userID string) interface{}) (string, string, error) {
	args := m.Called(ctx, user, buildProfile)
	return args.String(0), args.String(1), args.Error(2)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByHealthID(ctx context.Context, healthID string) (*models.User, error) {
	args := m.Called(ctx, healthID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

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

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) FindPatientByUserID(ctx context.Context, userID string) (*models.PatientProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PatientProfile), args.Error(1)
}

func (m *MockPatientRepository) FindPatientByID(ctx context.Context, patientID string) (*models.PatientProfile, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PatientProfile), args.Error(1)
}

type MockPharmacyRepository struct {
	mock.Mock
}

func (m *MockPharmacyRepository) FindPharmacyByUserID(ctx context.Context, userID string) (*models.PharmacyProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PharmacyProfile), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newTestAuthUsecase(
	authRepo *MockAuthRepository,
	userRepo *MockUserRepository,
	doctorRepo *MockDoctorRepository,
	patientRepo *MockPatientRepository,
	pharmacyRepo *MockPharmacyRepository,
	sessionService *MockSessionService,
) contracts.AuthUsecase {
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{
			Secret:        "test-secret",
			ExpTimeInHour: 24,
		},
	}
	return NewAuthUsecase(authRepo, userRepo, doctorRepo, patientRepo, pharmacyRepo, sessionService, internalConfig, zap.NewNop())
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("creates user with doctor profile and session", func(t *testing.T) {
		authRepo := new(MockAuthRepository)
		userRepo := new(MockUserRepository)
		sessionService := new(MockSessionService)
		uc := newTestAuthUsecase(authRepo, userRepo, new(MockDoctorRepository), new(MockPatientRepository), new(MockPharmacyRepository), sessionService)

		userRepo.On("FindUserByUsername", mock.Anything, "drsmith").Return(nil, nil)
		authRepo.On("CreateUserWithProfile", mock.Anything, mock.AnythingOfType("*models.User"), mock.Anything).
			Run(func(args mock.Arguments) {
				user := args.Get(1).(*models.User)
				assert.Equal(t, constvars.RoleDoctor, user.Role)
				assert.NotEqual(t, "secret-password", user.Password)

				buildProfile := args.Get(2).(func(userID string) interface{})
				profile := buildProfile("64f000000000000000000001").(*models.DoctorProfile)
				assert.Equal(t, "drsmith", profile.Name)
				assert.Equal(t, constvars.DefaultSpecialization, profile.Specialization)
				assert.Equal(t, constvars.DefaultHospital, profile.Hospital)
				assert.Equal(t, "LIC_64F00000", profile.LicenseNumber)
			}).
			Return("64f000000000000000000001", "64f000000000000000000002", nil)
		sessionService.On("CreateSession", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)

		response, err := uc.Register(context.Background(), &requests.RegisterUser{
			Username: "drsmith",
			Password: "secret-password",
			Role:     constvars.RoleDoctor,
		})

		assert.NoError(t, err)
		assert.Equal(t, "64f000000000000000000001", response.Account.ID)
		assert.Equal(t, "64f000000000000000000002", response.Account.ProfileID)
		assert.NotEmpty(t, response.Token)

		sessionID, err := utils.ParseSessionJWT(response.Token, "test-secret")
		assert.NoError(t, err)
		assert.NotEmpty(t, sessionID)

		authRepo.AssertExpectations(t)
		sessionService.AssertExpectations(t)
	})

	t.Run("duplicate username rejected without persisting", func(t *testing.T) {
		authRepo := new(MockAuthRepository)
		userRepo := new(MockUserRepository)
		uc := newTestAuthUsecase(authRepo, userRepo, new(MockDoctorRepository), new(MockPatientRepository), new(MockPharmacyRepository), new(MockSessionService))

		userRepo.On("FindUserByUsername", mock.Anything, "taken").Return(&models.User{ID: "u1", Username: "taken"}, nil)

		_, err := uc.Register(context.Background(), &requests.RegisterUser{
			Username: "taken",
			Password: "secret-password",
			Role:     constvars.RolePatient,
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		authRepo.AssertNotCalled(t, "CreateUserWithProfile")
	})

	t.Run("pharmacy profile defaults", func(t *testing.T) {
		authRepo := new(MockAuthRepository)
		userRepo := new(MockUserRepository)
		sessionService := new(MockSessionService)
		uc := newTestAuthUsecase(authRepo, userRepo, new(MockDoctorRepository), new(MockPatientRepository), new(MockPharmacyRepository), sessionService)

		userRepo.On("FindUserByUsername", mock.Anything, "citypharm").Return(nil, nil)
		authRepo.On("CreateUserWithProfile", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				buildProfile := args.Get(2).(func(userID string) interface{})
				profile := buildProfile("64f0000000000000000000aa").(*models.PharmacyProfile)
				assert.Equal(t, "PHARM_64F00000", profile.LicenseNumber)
				assert.Equal(t, constvars.DefaultPharmacyAddr, profile.Address)
			}).
			Return("64f0000000000000000000aa", "64f0000000000000000000ab", nil)
		sessionService.On("CreateSession", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Register(context.Background(), &requests.RegisterUser{
			Username: "citypharm",
			Password: "secret-password",
			Role:     constvars.RolePharmacy,
		})
		assert.NoError(t, err)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	hashed, _ := utils.HashPassword("correct-password")

	t.Run("unknown username and wrong password are indistinguishable", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := newTestAuthUsecase(new(MockAuthRepository), userRepo, new(MockDoctorRepository), new(MockPatientRepository), new(MockPharmacyRepository), new(MockSessionService))

		userRepo.On("FindUserByUsername", mock.Anything, "ghost").Return(nil, nil)
		userRepo.On("FindUserByUsername", mock.Anything, "known").Return(&models.User{
			ID:       "u1",
			Username: "known",
			Password: hashed,
			Role:     constvars.RolePatient,
		}, nil)

		_, errUnknown := uc.Login(context.Background(), &requests.LoginUser{Username: "ghost", Password: "whatever"})
		_, errWrongPass := uc.Login(context.Background(), &requests.LoginUser{Username: "known", Password: "wrong-password"})

		unknownErr, ok := errUnknown.(*exceptions.CustomError)
		assert.True(t, ok)
		wrongPassErr, ok := errWrongPass.(*exceptions.CustomError)
		assert.True(t, ok)

		assert.Equal(t, constvars.StatusUnauthorized, unknownErr.StatusCode)
		assert.Equal(t, unknownErr.StatusCode, wrongPassErr.StatusCode)
		assert.Equal(t, unknownErr.ClientMessage, wrongPassErr.ClientMessage)
	})

	t.Run("valid credentials issue a session token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		patientRepo := new(MockPatientRepository)
		sessionService := new(MockSessionService)
		uc := newTestAuthUsecase(new(MockAuthRepository), userRepo, new(MockDoctorRepository), patientRepo, new(MockPharmacyRepository), sessionService)

		userRepo.On("FindUserByUsername", mock.Anything, "known").Return(&models.User{
			ID:       "u1",
			Username: "known",
			Password: hashed,
			Role:     constvars.RolePatient,
		}, nil)
		patientRepo.On("FindPatientByUserID", mock.Anything, "u1").Return(&models.PatientProfile{ID: "p1", UserID: "u1"}, nil)
		sessionService.On("CreateSession", mock.Anything, mock.MatchedBy(func(session *models.Session) bool {
			return session.UserID == "u1" && session.Role == constvars.RolePatient && session.ProfileID == "p1"
		})).Return(nil)

		response, err := uc.Login(context.Background(), &requests.LoginUser{Username: "known", Password: "correct-password"})

		assert.NoError(t, err)
		assert.Equal(t, "p1", response.Account.ProfileID)
		assert.NotEmpty(t, response.Token)
		sessionService.AssertExpectations(t)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	sessionService := new(MockSessionService)
	uc := newTestAuthUsecase(new(MockAuthRepository), new(MockUserRepository), new(MockDoctorRepository), new(MockPatientRepository), new(MockPharmacyRepository), sessionService)

	sessionService.On("DeleteSession", mock.Anything, "sess-1").Return(nil)

	err := uc.Logout(context.Background(), "sess-1")
	assert.NoError(t, err)
	sessionService.AssertExpectations(t)
}
