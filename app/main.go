package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"time"

	"schoolhub/config"
	"schoolhub/services/school/delivery"
	"schoolhub/services/school/repository"
	"schoolhub/services/school/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

const requestTimeout = 15 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.NewFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	pool, err := config.BootPgxPool(context.Background())
	if err != nil {
		log.Fatalf("Failed to boot pgx pool: %v", err)
		return
	}
	defer pool.Close()

	// Repositories
	activityRepo := repository.NewActivityRepository(db)
	personRepo := repository.NewPersonRepository(db)
	hierarchyRepo := repository.NewHierarchyRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	attendanceStatsRepo := repository.NewAttendanceStatsRepository(pool)
	gradeStatsRepo := repository.NewGradeStatsRepository(pool)
	authRepo := repository.NewAuthRepository(personRepo)

	// Usecases
	authUC := usecase.NewAuthUseCase(authRepo, requestTimeout)
	personUC := usecase.NewPersonUseCase(personRepo, requestTimeout)
	hierarchyUC := usecase.NewHierarchyUseCase(hierarchyRepo, activityRepo, requestTimeout)
	enrollmentUC := usecase.NewEnrollmentUseCase(enrollmentRepo, personRepo, hierarchyRepo, activityRepo, requestTimeout)
	submissionUC := usecase.NewSubmissionUseCase(submissionRepo, hierarchyRepo, activityRepo, requestTimeout)
	attendanceUC := usecase.NewAttendanceUseCase(attendanceRepo, attendanceStatsRepo, enrollmentRepo, hierarchyRepo, activityRepo, requestTimeout)
	gradeStatsUC := usecase.NewGradeStatsUseCase(gradeStatsRepo, requestTimeout)

	// Delivery
	delivery.NewAuthDelivery(app, authUC)
	delivery.NewPersonDelivery(app, personUC)
	delivery.NewHierarchyDelivery(app, hierarchyUC)
	delivery.NewEnrollmentDelivery(app, enrollmentUC)
	delivery.NewSubmissionDelivery(app, submissionUC)
	delivery.NewAttendanceDelivery(app, attendanceUC)
	delivery.NewGradeStatsDelivery(app, gradeStatsUC)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
