// Package main is the entry point for the DungeonTower viewer.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeontower/internal/game"
	"github.com/samdwyer/dungeontower/internal/telemetry"
)

func main() {
	startup := stdr.New(log.New(os.Stderr, "dungeontower: ", log.LstdFlags))

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		startup.Info("no .env file loaded", "reason", err.Error())
	}

	cfg, err := game.LoadConfig(os.Getenv)
	if err != nil {
		startup.Error(err, "invalid configuration")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		startup.Error(err, "cannot open log file", "path", cfg.LogFile)
		os.Exit(1)
	}
	defer closeLog()

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		startup.Error(err, "telemetry setup failed, running without traces")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error(err, "telemetry shutdown")
			}
		}()
	}

	g, err := game.New(cfg, logger)
	if err != nil {
		startup.Error(err, "failed to initialize viewer")
		os.Exit(1)
	}

	if err := g.Run(ctx); err != nil {
		startup.Error(err, "viewer error")
		os.Exit(1)
	}
}

// newLogger returns a logger writing to path, or a discard logger when path is empty.
// The terminal belongs to tcell while the viewer runs.
func newLogger(path string) (logr.Logger, func(), error) {
	if path == "" {
		return logr.Discard(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return logr.Discard(), func() {}, err
	}
	stdr.SetVerbosity(1)
	return stdr.New(log.New(f, "", log.LstdFlags|log.Lmicroseconds)), func() { f.Close() }, nil
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is configured
// and no endpoint was set explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_DUNGEONTOWER_API_KEY")
	if apiKey == "" {
		return
	}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	dataset := os.Getenv("HONEYCOMB_DUNGEONTOWER_DATASET")
	if dataset == "" {
		dataset = "dungeontower"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
