package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"clinic-appointments/internal/config"
	"clinic-appointments/internal/console"
	"clinic-appointments/internal/directory"
	"clinic-appointments/internal/logger"
	"clinic-appointments/internal/metrics"
	"clinic-appointments/internal/repository"
	"clinic-appointments/internal/routes"
	"clinic-appointments/internal/schedule"
	"clinic-appointments/internal/services"
)

func main() {
	// Load environment variables; the desk runs fine without a .env file
	envErr := godotenv.Load()

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	appLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	if envErr != nil {
		appLogger.Debug("no .env file loaded", zap.Error(envErr))
	}

	dir, err := directory.Load()
	if err != nil {
		appLogger.Fatal("failed to load dermatologist roster", zap.Error(err))
	}

	repo := repository.NewMemoryAppointmentRepository()
	planner := schedule.NewPlanner(cfg.Clinic.SlotIntervalMinutes, cfg.Clinic.LookaheadDates)
	collector := metrics.NewCollector("clinic")

	appointmentService := services.NewAppointmentService(repo, dir, planner, collector, appLogger)
	invoiceService := services.NewInvoiceService(repo, cfg.Clinic, collector, appLogger)

	appLogger.Info("starting appointment desk",
		zap.String("mode", cfg.Mode),
		zap.String("env", cfg.Environment),
		zap.Int("dermatologists", dir.Len()),
	)

	if cfg.Mode == config.ModeHTTP {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		err = serveHTTP(ctx, cfg, appointmentService, invoiceService, collector, appLogger)
		stop()
	} else {
		err = console.New(appointmentService, invoiceService, os.Stdin, os.Stdout, appLogger).Run(context.Background())
	}
	if err != nil {
		appLogger.Error("appointment desk stopped with error", zap.Error(err))
		_ = appLogger.Sync()
		os.Exit(1)
	}
}

func serveHTTP(
	ctx context.Context,
	cfg *config.Config,
	appointments *services.AppointmentService,
	invoices *services.InvoiceService,
	collector *metrics.Collector,
	appLogger *zap.Logger,
) error {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, appointments, invoices, collector, appLogger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	appLogger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	appLogger.Info("server stopped")
	return nil
}
