package routers

import (
	"bytes"
	"context"
	"heallink-service/internal/app/delivery/http/middlewares"
	"heallink-service/internal/app/models"
	"heallink-service/internal/app/services/core/appointments"
	"heallink-service/internal/app/services/core/consents"
	"heallink-service/internal/app/services/core/doctors"
	"heallink-service/internal/app/services/core/prescriptions"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/dto/requests"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDoctorUsecase struct {
	mock.Mock
}

func (m *MockDoctorUsecase) GetProfile(ctx context.Context, session *models.Session) (*models.DoctorProfile, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DoctorProfile), args.Error(1)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) ListTodayForDoctor(ctx context.Context, session *models.Session) ([]models.Appointment, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) ListForPatient(ctx context.Context, session *models.Session) ([]models.Appointment, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

type MockConsentUsecase struct {
	mock.Mock
}

func (m *MockConsentUsecase) CreateConsentRequest(ctx context.Context, session *models.Session, request *requests.CreateConsentRequest) (*models.ConsentRequest, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ConsentRequest), args.Error(1)
}

func (m *MockConsentUsecase) ListForPatient(ctx context.Context, session *models.Session) ([]models.ConsentRequest, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ConsentRequest), args.Error(1)
}

func (m *MockConsentUsecase) RespondConsentRequest(ctx context.Context, session *models.Session, consentID string, request *requests.RespondConsentRequest) (*models.ConsentRequest, error) {
	args := m.Called(ctx, session, consentID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ConsentRequest), args.Error(1)
}

func newDoctorTestRouter(
	prescriptionUsecase *MockPrescriptionUsecase,
	consentUsecase *MockConsentUsecase,
	sessionService *MockSessionService,
) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := testInternalConfig()
	middlewareInstance := middlewares.NewMiddlewares(logger, sessionService, internalConfig)
	controllers := &Controllers{
		Doctor:       doctors.NewDoctorController(logger, new(MockDoctorUsecase)),
		Prescription: prescriptions.NewPrescriptionController(logger, prescriptionUsecase),
		Appointment:  appointments.NewAppointmentController(logger, new(MockAppointmentUsecase)),
		Consent:      consents.NewConsentController(logger, consentUsecase),
	}

	router := chi.NewRouter()
	router.Route("/doctor", func(r chi.Router) {
		attachDoctorRoutes(r, middlewareInstance, controllers)
	})
	return router
}

func doctorRequest(t *testing.T, sessionService *MockSessionService, method, target string, body []byte) *http.Request {
	t.Helper()
	sessionService.On("GetSession", mock.Anything, "sess-doc").Return(&models.Session{
		SessionID: "sess-doc",
		UserID:    "user-doc",
		Role:      constvars.RoleDoctor,
		ProfileID: "doc-1",
	}, nil)

	request := httptest.NewRequest(method, target, bytes.NewBuffer(body))
	request.Header.Set(constvars.HeaderAuthorization, "Bearer "+sessionTokenFor(t, "sess-doc"))
	return request
}

func TestDoctorRoutes_CreatePrescription(t *testing.T) {
	createBody := []byte(`{"patientId":"pat-1","medicines":[{"name":"Paracetamol","dosage":"500mg","frequency":"twice daily","duration":"5 days"}]}`)

	t.Run("created prescription answers 200 with the document", func(t *testing.T) {
		prescriptionUsecase := new(MockPrescriptionUsecase)
		sessionService := new(MockSessionService)
		router := newDoctorTestRouter(prescriptionUsecase, new(MockConsentUsecase), sessionService)

		prescriptionUsecase.On("CreatePrescription", mock.Anything, mock.MatchedBy(func(session *models.Session) bool {
			return session.ProfileID == "doc-1"
		}), mock.Anything).Return(&models.Prescription{
			ID:        "rx-1",
			DoctorID:  "doc-1",
			PatientID: "pat-1",
			Status:    constvars.PrescriptionStatusPending,
		}, nil)

		request := doctorRequest(t, sessionService, http.MethodPost, "/doctor/prescriptions", createBody)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, request)

		assert.Equal(t, constvars.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"rx-1"`)
		prescriptionUsecase.AssertExpectations(t)
	})

	t.Run("patient session cannot prescribe", func(t *testing.T) {
		prescriptionUsecase := new(MockPrescriptionUsecase)
		sessionService := new(MockSessionService)
		router := newDoctorTestRouter(prescriptionUsecase, new(MockConsentUsecase), sessionService)

		sessionService.On("GetSession", mock.Anything, "sess-pat").Return(&models.Session{
			SessionID: "sess-pat",
			Role:      constvars.RolePatient,
			ProfileID: "pat-1",
		}, nil)

		request := httptest.NewRequest(http.MethodPost, "/doctor/prescriptions", bytes.NewBuffer(createBody))
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+sessionTokenFor(t, "sess-pat"))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, request)

		assert.Equal(t, constvars.StatusForbidden, rr.Code)
		prescriptionUsecase.AssertNotCalled(t, "CreatePrescription")
	})
}

func TestDoctorRoutes_CreateConsentRequest(t *testing.T) {
	consentUsecase := new(MockConsentUsecase)
	sessionService := new(MockSessionService)
	router := newDoctorTestRouter(new(MockPrescriptionUsecase), consentUsecase, sessionService)

	consentUsecase.On("CreateConsentRequest", mock.Anything, mock.Anything, mock.Anything).Return(&models.ConsentRequest{
		ID:       "consent-1",
		DoctorID: "doc-1",
		Status:   constvars.ConsentStatusPending,
	}, nil)

	request := doctorRequest(t, sessionService, http.MethodPost, "/doctor/consent-request",
		[]byte(`{"patientId":"pat-1","purpose":"treatment review"}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, request)

	assert.Equal(t, constvars.StatusOK, rr.Code)
	consentUsecase.AssertExpectations(t)
}
