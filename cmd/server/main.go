package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Fezzo753/transcript-export-service/internal/app"
	"github.com/Fezzo753/transcript-export-service/internal/config"
	"github.com/Fezzo753/transcript-export-service/internal/events"
	"github.com/Fezzo753/transcript-export-service/internal/export"
	httpapi "github.com/Fezzo753/transcript-export-service/internal/http"
	"github.com/Fezzo753/transcript-export-service/internal/observability"
	"github.com/Fezzo753/transcript-export-service/internal/service/store"
)

func main() {
	// Local development reads settings from a .env file; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	application := app.New(cfg)
	if err := application.Start(); err != nil {
		log.Fatal().Err(err).Msg("Application start failed")
	}

	// Kafka publisher with separate topics for extraction and export events
	publisher := events.New(&events.Config{
		Enabled:        cfg.Kafka.Enabled,
		Brokers:        cfg.Kafka.Brokers,
		TopicExtracted: cfg.Kafka.TopicExtracted,
		TopicExported:  cfg.Kafka.TopicExported,
		Principal:      cfg.Service.Principal,
	})
	defer publisher.Close()

	exporter := export.New(&export.Config{CueSize: cfg.Export.CueSize})
	archive := store.New(cfg.Service.ResultsDir)

	handler := httpapi.NewHandler(exporter, publisher, archive, nil)
	router := httpapi.NewRouter(handler)

	apiServer := &http.Server{
		Addr:         ":" + cfg.Service.HTTPPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	obsServer := observability.NewServer(":" + cfg.Observability.MetricsPort)
	obsServer.Start()

	go func() {
		log.Info().Str("addr", apiServer.Addr).Msg("Transcript export service started")
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP serve failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("Shutting down HTTP servers")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("API server shutdown error")
	}
	if err := obsServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Observability server shutdown error")
	}
	application.Shutdown()
}
