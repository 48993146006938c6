package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-settings-registry/internal/adapter"
	"github.com/MKhiriev/go-settings-registry/internal/client"
	"github.com/MKhiriev/go-settings-registry/internal/config"
	"github.com/MKhiriev/go-settings-registry/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, rest, err := config.GetClientConfig(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		client.Usage(os.Stderr)
		return 2
	}

	log := logger.NewCLILogger("settingsctl", cfg.LogLevel)

	if len(rest) == 1 && rest[0] == "version" {
		printBuildInfo()
		return 0
	}

	settingsAdapter, err := adapter.NewHTTPSettingsAdapter(*cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("create settings adapter")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = client.NewApp(settingsAdapter, os.Stdout, log).Run(ctx, rest)
	if err != nil {
		fmt.Fprintln(os.Stderr, "settingsctl:", err)
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			client.Usage(os.Stderr)
		}
	}

	return client.ExitCode(err)
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
