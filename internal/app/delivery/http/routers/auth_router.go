package routers

import (
	"heallink-service/internal/app/delivery/http/middlewares"
	"heallink-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.With(middlewares.CredentialLimiter.Limit).Post("/register", authController.Register)
	router.With(middlewares.CredentialLimiter.Limit).Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.Authenticate).Get("/user", authController.CurrentUser)
}
