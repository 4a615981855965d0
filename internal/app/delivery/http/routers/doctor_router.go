package routers

import (
	"heallink-service/internal/app/delivery/http/middlewares"
	"heallink-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, controllers *Controllers) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRole(constvars.RoleDoctor))

	router.Get("/profile", controllers.Doctor.GetProfile)
	router.Post("/prescriptions", controllers.Prescription.Create)
	router.Get("/prescriptions", controllers.Prescription.ListForDoctor)
	router.Get("/appointments/today", controllers.Appointment.ListTodayForDoctor)
	router.Post("/consent-request", controllers.Consent.Create)
}
