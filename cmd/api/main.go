package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aayaanhealth/hospital-api/internal/config"
	"github.com/aayaanhealth/hospital-api/internal/handler"
	admissionHandler "github.com/aayaanhealth/hospital-api/internal/handler/admission"
	ambulanceHandler "github.com/aayaanhealth/hospital-api/internal/handler/ambulance"
	appointmentHandler "github.com/aayaanhealth/hospital-api/internal/handler/appointment"
	authHandler "github.com/aayaanhealth/hospital-api/internal/handler/auth"
	billingHandler "github.com/aayaanhealth/hospital-api/internal/handler/billing"
	dashboardHandler "github.com/aayaanhealth/hospital-api/internal/handler/dashboard"
	doctorHandler "github.com/aayaanhealth/hospital-api/internal/handler/doctor"
	labHandler "github.com/aayaanhealth/hospital-api/internal/handler/lab"
	patientHandler "github.com/aayaanhealth/hospital-api/internal/handler/patient"
	pharmacyHandler "github.com/aayaanhealth/hospital-api/internal/handler/pharmacy"
	prescriptionHandler "github.com/aayaanhealth/hospital-api/internal/handler/prescription"
	"github.com/aayaanhealth/hospital-api/internal/middleware"
	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository/postgres"
	"github.com/aayaanhealth/hospital-api/internal/router"
	admissionService "github.com/aayaanhealth/hospital-api/internal/service/admission"
	ambulanceService "github.com/aayaanhealth/hospital-api/internal/service/ambulance"
	appointmentService "github.com/aayaanhealth/hospital-api/internal/service/appointment"
	authService "github.com/aayaanhealth/hospital-api/internal/service/auth"
	billingService "github.com/aayaanhealth/hospital-api/internal/service/billing"
	dashboardService "github.com/aayaanhealth/hospital-api/internal/service/dashboard"
	doctorService "github.com/aayaanhealth/hospital-api/internal/service/doctor"
	labService "github.com/aayaanhealth/hospital-api/internal/service/lab"
	patientService "github.com/aayaanhealth/hospital-api/internal/service/patient"
	pharmacyService "github.com/aayaanhealth/hospital-api/internal/service/pharmacy"
	prescriptionService "github.com/aayaanhealth/hospital-api/internal/service/prescription"
	"github.com/aayaanhealth/hospital-api/pkg/auth"
	"github.com/aayaanhealth/hospital-api/pkg/logger"
	"github.com/aayaanhealth/hospital-api/pkg/messaging"
	redisBroker "github.com/aayaanhealth/hospital-api/pkg/messaging/redis"
	"github.com/aayaanhealth/hospital-api/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})

	if cfg.JWT.Secret == config.InsecureDefaultSecret {
		log.Warn().Msg("no signing key configured, using insecure default secret")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Reconciliation feed is optional, the service degrades to
	// log-only when Redis is absent.
	var broker messaging.Broker
	if cfg.Redis.URL != "" {
		broker, err = redisBroker.NewRedisBroker(cfg.Redis.URL)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, stock discrepancy feed disabled")
		} else {
			defer broker.Close()
		}
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	recordRepo := postgres.NewMedicalRecordRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	prescriptionRepo := postgres.NewPrescriptionRepository(db)
	labRepo := postgres.NewLabTestRepository(db)
	medicineRepo := postgres.NewMedicineRepository(db)
	dispenseRepo := postgres.NewDispenseRepository(db)
	admissionRepo := postgres.NewAdmissionRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	ambulanceRepo := postgres.NewAmbulanceRepository(db)

	// Services
	hasher := security.NewBcryptHasher(0)
	tokens := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	authSvc := authService.NewService(userRepo, patientRepo, doctorRepo, hasher, tokens, log)
	patientSvc := patientService.NewService(patientRepo, recordRepo)
	doctorSvc := doctorService.NewService(doctorRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo)
	prescriptionSvc := prescriptionService.NewService(prescriptionRepo)
	labSvc := labService.NewService(labRepo)
	pharmacySvc := pharmacyService.NewService(medicineRepo, dispenseRepo, broker, log)
	admissionSvc := admissionService.NewService(admissionRepo)
	billingSvc := billingService.NewService(paymentRepo)
	ambulanceSvc := ambulanceService.NewService(ambulanceRepo)
	dashboardSvc := dashboardService.NewService(patientRepo, appointmentRepo, labRepo)

	// Router
	model.RegisterValidators()
	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	h := handler.NewHandler(db)

	r := router.NewRouter(
		authMiddleware,
		h,
		log,
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			CORS:           middleware.DefaultCORSConfig(),
		},
		[]router.Handler{
			authHandler.NewHandler(authSvc),
			ambulanceHandler.NewHandler(ambulanceSvc),
		},
		[]router.Handler{
			dashboardHandler.NewHandler(dashboardSvc),
			patientHandler.NewHandler(patientSvc),
			doctorHandler.NewHandler(doctorSvc),
			appointmentHandler.NewHandler(appointmentSvc),
			prescriptionHandler.NewHandler(prescriptionSvc),
			labHandler.NewHandler(labSvc),
			pharmacyHandler.NewHandler(pharmacySvc),
			admissionHandler.NewHandler(admissionSvc),
			billingHandler.NewHandler(billingSvc),
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
