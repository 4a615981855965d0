package main

import (
	"context"
	"heallink-service/internal/app/config"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/delivery/http/middlewares"
	"heallink-service/internal/app/delivery/http/routers"
	"heallink-service/internal/app/drivers/database"
	"heallink-service/internal/app/drivers/logger"
	"heallink-service/internal/app/drivers/messaging"
	minioDriver "heallink-service/internal/app/drivers/storage"
	"heallink-service/internal/app/services/core/appointments"
	"heallink-service/internal/app/services/core/auth"
	"heallink-service/internal/app/services/core/chatbot"
	"heallink-service/internal/app/services/core/consents"
	"heallink-service/internal/app/services/core/doctors"
	exchangeCore "heallink-service/internal/app/services/core/exchange"
	"heallink-service/internal/app/services/core/healthrecords"
	"heallink-service/internal/app/services/core/patients"
	"heallink-service/internal/app/services/core/pharmacies"
	"heallink-service/internal/app/services/core/prescriptions"
	"heallink-service/internal/app/services/core/session"
	"heallink-service/internal/app/services/core/users"
	"heallink-service/internal/app/services/shared/events"
	"heallink-service/internal/app/services/shared/healthid"
	redisRepo "heallink-service/internal/app/services/shared/redis"
	"heallink-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	bootLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        database.NewMongoDB(driverConfig),
		Redis:          database.NewRedisClient(driverConfig),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, bootLog)
	}
	if driverConfig.Minio.Enabled {
		bootstrap.Minio = minioDriver.NewMinio(driverConfig, bootLog)
	}

	bootstrapTheApp(bootstrap, location, bootLog)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, location *time.Location, bootLog *logrus.Logger) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelIndexes()
	err := users.EnsureUserIndexes(indexCtx, bootstrap.MongoDB, dbName)
	if err != nil {
		bootLog.Fatalf("Failed to ensure user indexes: %v", err)
	}

	// Shared collaborators
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig.App.LoginSessionExpiredTimeInHours)
	exchangeClient := healthid.NewExchangeClient(bootstrap.InternalConfig, bootstrap.Logger)

	var eventPublisher contracts.EventPublisher = events.NewNoopEventPublisher()
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewRabbitEventPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQEventQueue, bootstrap.Logger)
		if err != nil {
			bootLog.Fatalf("Failed to initialize event publisher: %v", err)
		}
		eventPublisher = publisher
	}

	var objectStorage contracts.ObjectStorage
	if bootstrap.Minio != nil {
		objectStorage = storage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	authRepository := auth.NewAuthMongoRepository(bootstrap.MongoDB, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	pharmacyRepository := pharmacies.NewPharmacyMongoRepository(bootstrap.MongoDB, dbName)
	prescriptionRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	consentRepository := consents.NewConsentMongoRepository(bootstrap.MongoDB, dbName)
	healthRecordRepository := healthrecords.NewHealthRecordMongoRepository(bootstrap.MongoDB, dbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(authRepository, userRepository, doctorRepository, patientRepository, pharmacyRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	// Profiles
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase)
	patientUsecase := patients.NewPatientUsecase(patientRepository, bootstrap.Logger)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)
	pharmacyUsecase := pharmacies.NewPharmacyUsecase(pharmacyRepository, bootstrap.Logger)
	pharmacyController := pharmacies.NewPharmacyController(bootstrap.Logger, pharmacyUsecase)

	// Prescriptions
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionRepository, patientRepository, userRepository, exchangeClient, eventPublisher, bootstrap.InternalConfig, bootstrap.Logger)
	prescriptionController := prescriptions.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, location, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Consents
	consentUsecase := consents.NewConsentUsecase(consentRepository, patientRepository, userRepository, exchangeClient, eventPublisher, bootstrap.InternalConfig, bootstrap.Logger)
	consentController := consents.NewConsentController(bootstrap.Logger, consentUsecase)

	// Health records
	healthRecordUsecase := healthrecords.NewHealthRecordUsecase(healthRecordRepository, objectStorage, bootstrap.Logger)
	healthRecordController := healthrecords.NewHealthRecordController(bootstrap.Logger, healthRecordUsecase)

	// Chatbot
	chatbotUsecase := chatbot.NewChatbotUsecase(patientRepository, prescriptionRepository, healthRecordRepository, bootstrap.Logger)
	chatbotController := chatbot.NewChatbotController(bootstrap.Logger, chatbotUsecase)

	// Exchange
	exchangeUsecase := exchangeCore.NewExchangeUsecase(userRepository, patientRepository, exchangeClient, bootstrap.Logger)
	exchangeController := exchangeCore.NewExchangeController(bootstrap.Logger, exchangeUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, &routers.Controllers{
		Auth:         authController,
		Doctor:       doctorController,
		Patient:      patientController,
		Pharmacy:     pharmacyController,
		Prescription: prescriptionController,
		Appointment:  appointmentController,
		Consent:      consentController,
		HealthRecord: healthRecordController,
		Chatbot:      chatbotController,
		Exchange:     exchangeController,
	})
}
