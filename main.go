package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careplus/config"
	"careplus/cron"
	"careplus/database"
	appointmentRepoPkg "careplus/database/repository/appointment"
	patientRepoPkg "careplus/database/repository/patient"
	userRepoPkg "careplus/database/repository/user"
	"careplus/handlers"
	"careplus/middleware"
	"careplus/routes"
	"careplus/services/appointment"
	"careplus/services/availability"
	"careplus/services/notification"
	"careplus/services/patient"
	"careplus/services/tasks"
	"careplus/services/user"
	"careplus/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	patRepo := patientRepoPkg.NewMongoPatientRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: usrRepo,
	}

	patientService := &patient.DefaultPatientService{
		Repo:       patRepo,
		StorageSvc: cloudinaryStorageService,
	}

	smsService, err := notification.NewGatewaySMSService(userService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize sms service: %v", err)
	}

	availabilityEngine := availability.NewDefaultEngine(apptRepo)

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:      apptRepo,
		Patients:  patRepo,
		Engine:    availabilityEngine,
		SMS:       smsService,
		Reminders: tasks.NewAsynqReminderScheduler(),
	}

	userHandler := handlers.NewUserHandler(userService, logger)
	patientHandler := handlers.NewPatientHandler(patientService, logger)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityEngine, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// User endpoints.
		CreateUserHandler: userHandler.CreateUserHandler,
		GetUserHandler:    userHandler.GetUserHandler,

		// Patient endpoints.
		RegisterPatientHandler: patientHandler.RegisterPatientHandler,
		GetPatientHandler:      patientHandler.GetPatientHandler,

		// Appointment endpoints.
		CreateAppointmentHandler:      appointmentHandler.CreateAppointmentHandler,
		GetAppointmentHandler:         appointmentHandler.GetAppointmentHandler,
		UpdateAppointmentHandler:      appointmentHandler.UpdateAppointmentHandler,
		ListRecentAppointmentsHandler: appointmentHandler.ListRecentAppointmentsHandler,

		// Availability endpoints.
		CheckAvailabilityHandler: availabilityHandler.CheckAvailabilityHandler,
		AvailableSlotsHandler:    availabilityHandler.AvailableSlotsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker(smsService)
	utils.StartHealthMonitor(database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
