package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-fortnite-client/fortnite"
	"github.com/MKhiriev/go-fortnite-client/internal/client"
	"github.com/MKhiriev/go-fortnite-client/internal/config"
	"github.com/MKhiriev/go-fortnite-client/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("fortnite-cli")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	opts := fortnite.OptionsFromConfig(cfg)
	opts.Logger = &log.Logger
	opts.OnRenewalFailure = func(err error) {
		log.Error().Err(err).Msg("session lost")
	}

	api := fortnite.New(fortnite.Credentials(cfg.Credentials), opts)
	app := client.NewApp(api, cfg.Credentials, os.Stdout, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, cfg.Command); err != nil {
		stop()
		log.Fatal().Err(err).Msg("command failed")
	}
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

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
