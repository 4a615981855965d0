package routers

import (
	"heallink-service/internal/app/delivery/http/middlewares"
	"heallink-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachChatbotRoutes(router chi.Router, middlewares *middlewares.Middlewares, controllers *Controllers) {
	router.Use(middlewares.Authenticate)

	router.Post("/query", controllers.Chatbot.Query)
	router.With(middlewares.RequireRole(constvars.RoleDoctor)).Get("/patient-summary/{patientID}", controllers.Chatbot.PatientSummary)
}
