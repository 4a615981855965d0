package routers

import (
	"heallink-service/internal/app/delivery/http/middlewares"
	"heallink-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, controllers *Controllers) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRole(constvars.RolePatient))

	router.Get("/profile", controllers.Patient.GetProfile)
	router.Get("/prescriptions", controllers.Prescription.ListForPatient)
	router.Get("/consent-requests", controllers.Consent.ListForPatient)
	router.Patch("/consent-requests/{consentID}", controllers.Consent.Respond)
	router.Get("/appointments", controllers.Appointment.ListForPatient)
	router.Get("/health-records", controllers.HealthRecord.ListForPatient)
}
