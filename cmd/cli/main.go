package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/dmalx/tickethold/internal/adapter/cli"
	"github.com/dmalx/tickethold/internal/adapter/inventory"
	"github.com/dmalx/tickethold/internal/adapter/registry"
	"github.com/dmalx/tickethold/internal/adapter/scheduler"
	"github.com/dmalx/tickethold/internal/config"
	"github.com/dmalx/tickethold/internal/core/services"
)

func main() {
	_ = godotenv.Load()

	// Keep lifecycle logging out of the interactive prompt.
	logrus.SetLevel(logrus.WarnLevel)

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

	cli.New(ticketService, os.Stdin, os.Stdout).Run()
}
