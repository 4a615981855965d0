package auth

import (
	"context"
	"fmt"
	"heallink-service/internal/app/config"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/dto/requests"
	"heallink-service/internal/pkg/dto/responses"
	"heallink-service/internal/pkg/exceptions"
	"heallink-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthRepository     contracts.AuthRepository
	UserRepository     contracts.UserRepository
	DoctorRepository   contracts.DoctorRepository
	PatientRepository  contracts.PatientRepository
	PharmacyRepository contracts.PharmacyRepository
	SessionService     contracts.SessionService
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewAuthUsecase(
	authRepository contracts.AuthRepository,
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	pharmacyRepository contracts.PharmacyRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AuthRepository:     authRepository,
		UserRepository:     userRepository,
		DoctorRepository:   doctorRepository,
		PatientRepository:  patientRepository,
		PharmacyRepository: pharmacyRepository,
		SessionService:     sessionService,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	existingUser, err := uc.UserRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(fmt.Errorf("username %s already taken", request.Username))
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		Username: request.Username,
		Password: hashedPassword,
		Role:     request.Role,
		HealthID: request.HealthID,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	profileData := request.ProfileData
	if profileData == nil {
		profileData = &requests.ProfileFields{}
	}

	buildProfile, err := uc.profileBuilder(request, profileData)
	if err != nil {
		return nil, err
	}

	userID, profileID, err := uc.AuthRepository.CreateUserWithProfile(ctx, user, buildProfile)
	if err != nil {
		return nil, err
	}

	token, err := uc.establishSession(ctx, userID, request.Username, request.Role, profileID)
	if err != nil {
		return nil, err
	}

	return &responses.RegisterUser{
		Account: responses.Account{
			ID:        userID,
			Username:  request.Username,
			Role:      request.Role,
			HealthID:  request.HealthID,
			ProfileID: profileID,
		},
		Token: token,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Unknown username and wrong password must produce the same error.
	user, err := uc.UserRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(fmt.Errorf("credentials rejected"))
	}

	profileID, err := uc.resolveProfileID(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := uc.establishSession(ctx, user.ID, user.Username, user.Role, profileID)
	if err != nil {
		return nil, err
	}

	return &responses.LoginUser{
		Account: responses.Account{
			ID:        user.ID,
			Username:  user.Username,
			Role:      user.Role,
			HealthID:  user.HealthID,
			ProfileID: profileID,
		},
		Token: token,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.SessionService.DeleteSession(ctx, sessionID)
}

func (uc *authUsecase) CurrentUser(ctx context.Context, session *models.Session) (*responses.Account, error) {
	user, err := uc.UserRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrSessionNotFound(fmt.Errorf("user %s no longer exists", session.UserID))
	}

	return &responses.Account{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		HealthID:  user.HealthID,
		ProfileID: session.ProfileID,
	}, nil
}

func (uc *authUsecase) profileBuilder(request *requests.RegisterUser, profileData *requests.ProfileFields) (func(userID string) interface{}, error) {
	name := profileData.Name
	if name == "" {
		name = request.Username
	}
	email := profileData.Email
	if email == "" {
		email = request.Email
	}

	switch request.Role {
	case constvars.RoleDoctor:
		specialization := profileData.Specialization
		if specialization == "" {
			specialization = constvars.DefaultSpecialization
		}
		hospital := profileData.Hospital
		if hospital == "" {
			hospital = constvars.DefaultHospital
		}
		return func(userID string) interface{} {
			licenseNumber := profileData.LicenseNumber
			if licenseNumber == "" {
				licenseNumber = utils.GenerateLicenseNumber("LIC", userID)
			}
			return &models.DoctorProfile{
				UserID:         userID,
				Name:           name,
				Specialization: specialization,
				Hospital:       hospital,
				LicenseNumber:  licenseNumber,
				Phone:          profileData.Phone,
				Email:          email,
			}
		}, nil
	case constvars.RolePatient:
		var dateOfBirth *time.Time
		if profileData.DateOfBirth != "" {
			if parsed, parseErr := time.Parse("2006-01-02", profileData.DateOfBirth); parseErr == nil {
				dateOfBirth = &parsed
			}
		}
		return func(userID string) interface{} {
			return &models.PatientProfile{
				UserID:           userID,
				Name:             name,
				DateOfBirth:      dateOfBirth,
				BloodGroup:       profileData.BloodGroup,
				Phone:            profileData.Phone,
				Email:            email,
				Address:          profileData.Address,
				EmergencyContact: profileData.EmergencyContact,
				InsuranceInfo:    profileData.InsuranceInfo,
			}
		}, nil
	case constvars.RolePharmacy:
		address := profileData.Address
		if address == "" {
			address = constvars.DefaultPharmacyAddr
		}
		return func(userID string) interface{} {
			licenseNumber := profileData.LicenseNumber
			if licenseNumber == "" {
				licenseNumber = utils.GenerateLicenseNumber("PHARM", userID)
			}
			return &models.PharmacyProfile{
				UserID:        userID,
				Name:          name,
				LicenseNumber: licenseNumber,
				Address:       address,
				Phone:         profileData.Phone,
				Email:         email,
			}
		}, nil
	default:
		return nil, exceptions.ErrInvalidRoleType(fmt.Errorf("role %s is not supported", request.Role))
	}
}

// resolveProfileID finds the role profile row for a logged-in user.
// A missing row does not block login; profile endpoints report it.
func (uc *authUsecase) resolveProfileID(ctx context.Context, user *models.User) (string, error) {
	switch user.Role {
	case constvars.RoleDoctor:
		profile, err := uc.DoctorRepository.FindDoctorByUserID(ctx, user.ID)
		if err != nil || profile == nil {
			return "", err
		}
		return profile.ID, nil
	case constvars.RolePatient:
		profile, err := uc.PatientRepository.FindPatientByUserID(ctx, user.ID)
		if err != nil || profile == nil {
			return "", err
		}
		return profile.ID, nil
	case constvars.RolePharmacy:
		profile, err := uc.PharmacyRepository.FindPharmacyByUserID(ctx, user.ID)
		if err != nil || profile == nil {
			return "", err
		}
		return profile.ID, nil
	default:
		return "", nil
	}
}

func (uc *authUsecase) establishSession(ctx context.Context, userID, username, role, profileID string) (string, error) {
	sessionID := utils.GenerateSessionID()
	session := &models.Session{
		SessionID: sessionID,
		UserID:    userID,
		Username:  username,
		Role:      role,
		ProfileID: profileID,
	}
	err := uc.SessionService.CreateSession(ctx, session)
	if err != nil {
		return "", err
	}

	return utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
}
