package routers

import (
	"heallink-service/internal/app/delivery/http/middlewares"
	"heallink-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachExchangeRoutes(router chi.Router, middlewares *middlewares.Middlewares, controllers *Controllers) {
	router.Use(middlewares.Authenticate)

	router.Post("/health-id", controllers.Exchange.CreateHealthID)
	router.Get("/patient/{healthID}", controllers.Exchange.LookupPatient)
	router.With(middlewares.RequireRole(constvars.RolePharmacy)).Post("/verify-prescription", controllers.Exchange.VerifyPrescription)
}
