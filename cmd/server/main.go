package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-api-gate/internal/config"
	"github.com/MKhiriev/go-api-gate/internal/handler"
	"github.com/MKhiriev/go-api-gate/internal/logger"
	"github.com/MKhiriev/go-api-gate/internal/server"
	"github.com/MKhiriev/go-api-gate/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger("go-api-gate", logger.Config{
		Development:  cfg.App.IsDevelopment(),
		Dir:          cfg.Logs.Dir,
		ErrorFile:    cfg.Logs.ErrorFile,
		CombinedFile: cfg.Logs.CombinedFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Debug().Any("config", cfg).Msg("received configs")

	services := service.NewServices(cfg.Auth, log)
	handlers := handler.NewHandlers(services, cfg, log)

	// outer observer of errors the HTTP layer has already responded to
	handlers.HTTP.SetErrorHook(func(err error) {
		log.Error().Err(err).Msg("unhandled error escaped request pipeline")
	})

	servers, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return
	}

	servers.RunServer()
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
