package routers

import (
	"fmt"
	"heallink-service/internal/app/config"
	"heallink-service/internal/app/delivery/http/middlewares"
	"heallink-service/internal/app/services/core/appointments"
	"heallink-service/internal/app/services/core/auth"
	"heallink-service/internal/app/services/core/chatbot"
	"heallink-service/internal/app/services/core/consents"
	"heallink-service/internal/app/services/core/doctors"
	"heallink-service/internal/app/services/core/exchange"
	"heallink-service/internal/app/services/core/healthrecords"
	"heallink-service/internal/app/services/core/patients"
	"heallink-service/internal/app/services/core/pharmacies"
	"heallink-service/internal/app/services/core/prescriptions"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Auth         *auth.AuthController
	Doctor       *doctors.DoctorController
	Patient      *patients.PatientController
	Pharmacy     *pharmacies.PharmacyController
	Prescription *prescriptions.PrescriptionController
	Appointment  *appointments.AppointmentController
	Consent      *consents.ConsentController
	HealthRecord *healthrecords.HealthRecordController
	Chatbot      *chatbot.ChatbotController
	Exchange     *exchange.ExchangeController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		attachAuthRoutes(r, middlewares, controllers.Auth)

		r.Route("/doctor", func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, controllers)
		})

		r.Route("/patient", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, controllers)
		})

		r.Route("/pharmacy", func(r chi.Router) {
			attachPharmacyRoutes(r, middlewares, controllers)
		})

		r.Route("/chatbot", func(r chi.Router) {
			attachChatbotRoutes(r, middlewares, controllers)
		})

		r.Route("/exchange", func(r chi.Router) {
			attachExchangeRoutes(r, middlewares, controllers)
		})
	})
}
