package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/dmalx/tickethold/internal/adapter/handler"
	"github.com/dmalx/tickethold/internal/adapter/inventory"
	"github.com/dmalx/tickethold/internal/adapter/registry"
	"github.com/dmalx/tickethold/internal/adapter/scheduler"
	"github.com/dmalx/tickethold/internal/config"
	"github.com/dmalx/tickethold/internal/core/services"
	"github.com/dmalx/tickethold/internal/platform/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using OS environment")
	}

	logger.Init(config.GetEnv("APP_ENV", "dev"))

	viperInstance, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Cannot load config: %v", err)
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("Cannot parse config: %v", err)
	}

	holdScheduler := scheduler.New()
	defer holdScheduler.Stop()

	ticketService, err := services.New(
		cfg.Venue.Rows,
		cfg.Venue.Cols,
		cfg.Hold.Duration,
		inventory.New(nil),
		registry.New(),
		holdScheduler,
	)
	if err != nil {
		logrus.Fatalf("Cannot create ticket service: %v", err)
	}

	logrus.Infof("Venue ready: %dx%d, %d seats, hold duration %s",
		cfg.Venue.Rows, cfg.Venue.Cols, ticketService.NumSeatsAvailable(), cfg.Hold.Duration)

	ticketHandler := handler.NewTicketHandler(ticketService)

	mux := http.NewServeMux()
	mux.HandleFunc("/seats", ticketHandler.GetAvailability)
	mux.HandleFunc("/holds", ticketHandler.CreateHold)
	mux.HandleFunc("/reservations", ticketHandler.ReserveSeats)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, config.GetEnv("PORT", cfg.Server.Port)),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logrus.Infof("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exiting")
}
