package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-food-manager/config"
	deliveryHttp "hospital-food-manager/internal/delivery/http"
	"hospital-food-manager/internal/delivery/http/handler"
	"hospital-food-manager/internal/delivery/http/middleware"
	"hospital-food-manager/internal/infrastructure/database"
	"hospital-food-manager/internal/repository"
	"hospital-food-manager/internal/usecase"
	"hospital-food-manager/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.Open(cfg.DB, logrus.StandardLogger())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           NewHandler(db, logrus.StandardLogger()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// NewHandler wires repositories, usecases and handlers around one database
// handle and returns the routed HTTP handler.
func NewHandler(db *gorm.DB, log *logrus.Logger) http.Handler {
	customValidator := validator.NewValidator()

	// Repositories
	patientRepo := repository.NewPatientRepository()
	dietChartRepo := repository.NewDietChartRepository()
	staffRepo := repository.NewStaffRepository()
	taskRepo := repository.NewTaskRepository()
	deliveryRepo := repository.NewDeliveryRepository()

	// Usecases
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, dietChartRepo)
	dietChartUsecase := usecase.NewDietChartUsecase(db, log, dietChartRepo)
	staffUsecase := usecase.NewStaffUsecase(db, log, staffRepo)
	taskUsecase := usecase.NewTaskUsecase(db, log, taskRepo)
	deliveryUsecase := usecase.NewDeliveryUsecase(db, log, deliveryRepo)

	// Handlers
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator, log)
	dietChartHandler := handler.NewDietChartHandler(dietChartUsecase, log)
	staffHandler := handler.NewStaffHandler(staffUsecase, log)
	taskHandler := handler.NewTaskHandler(taskUsecase, log)
	deliveryHandler := handler.NewDeliveryHandler(deliveryUsecase, log)

	router := deliveryHttp.NewRouter(
		patientHandler,
		dietChartHandler,
		staffHandler,
		taskHandler,
		deliveryHandler,
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
	)
	return router.Setup()
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server is running on http://localhost:%s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the database connection pool
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
