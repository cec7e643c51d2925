package main

import (
	"fmt"

	"github.com/rpassos/autoescola/internal/client"
	"github.com/rpassos/autoescola/internal/config"
	"github.com/rpassos/autoescola/internal/logger"
	"github.com/rpassos/autoescola/internal/service"
	"github.com/rpassos/autoescola/internal/store"
	"github.com/rpassos/autoescola/internal/tui"
	"github.com/rpassos/autoescola/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("autoescola")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, log)

	version := cfg.App.Version
	if version == "" {
		version = buildVersion
	}

	ui, err := tui.New(services, version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	backup := workers.NewBackupWorker(store.StorageFile(cfg.Storage), cfg.Workers, log)
	defer backup.Stop()

	app, err := client.NewApp(services, ui, workers.NewWorkers(backup), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("run error")
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

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
