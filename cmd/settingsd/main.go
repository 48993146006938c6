package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-settings-registry/internal/app"
	"github.com/MKhiriev/go-settings-registry/internal/config"
	"github.com/MKhiriev/go-settings-registry/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("settingsd", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("settingsd", cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	daemon, err := app.NewApp(cfg, buildVersion, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating settings daemon")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err = daemon.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("settings daemon stopped with error")
	}
	log.Info().Msg("settings daemon stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
