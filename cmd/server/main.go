package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/handler"
	"github.com/MKhiriev/go-reader-sync/internal/kvstore"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/realtime"
	"github.com/MKhiriev/go-reader-sync/internal/server"
	"github.com/MKhiriev/go-reader-sync/internal/service"
	"github.com/MKhiriev/go-reader-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("reader-sync-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	kv, err := kvstore.New(kvstore.Options{Path: cfg.Storage.KV.Path, InMemory: cfg.Storage.KV.InMemory}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening proxy kv store")
	}
	defer closeStore(kv, log)

	var gc []server.GarbageCollector
	if kv.Configured() {
		gc = append(gc, kv)
	} else {
		log.Warn().Msg("proxy kv store is not configured, sync requests will be answered with 503")
	}

	var hub *realtime.Hub
	if cfg.Server.RealtimeAddress != "" {
		rtStore, err := kvstore.New(kvstore.Options{
			Path:     cfg.Storage.Realtime.Path,
			InMemory: cfg.Storage.Realtime.InMemory || cfg.Storage.Realtime.Path == "",
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error opening realtime store")
		}
		defer closeStore(rtStore, log)
		gc = append(gc, rtStore)

		db, err := realtime.OpenDatabase(context.Background(), rtStore, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error loading realtime database")
		}
		hub = realtime.NewHub(db, log)
	}

	buildInfo := models.NewAppBuildInfo(version(cfg), buildDate, buildCommit)
	services, err := service.NewServices(kv, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, hub, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, hub, cfg.Server, log, gc...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func version(cfg *config.StructuredConfig) string {
	if cfg.App.Version != "" {
		return cfg.App.Version
	}
	return buildVersion
}

func closeStore(s *kvstore.Store, log *logger.Logger) {
	if err := s.Close(); err != nil {
		log.Error().Err(err).Msg("error closing store")
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
