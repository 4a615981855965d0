package routers

import (
	"heallink-service/internal/app/delivery/http/middlewares"
	"heallink-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPharmacyRoutes(router chi.Router, middlewares *middlewares.Middlewares, controllers *Controllers) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRole(constvars.RolePharmacy))

	router.Get("/profile", controllers.Pharmacy.GetProfile)
	router.Get("/prescriptions/pending", controllers.Prescription.ListPending)
	router.Patch("/prescriptions/{prescriptionID}/dispense", controllers.Prescription.Dispense)
}
