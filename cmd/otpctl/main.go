// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-otp-keeper/internal/adapter"
	"github.com/MKhiriev/go-otp-keeper/internal/client"
	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
)

func main() {
	log := logger.NewLogger("otpctl")

	// flags belong to the subcommands; configuration comes from env and files
	cfg, err := config.LoadStructuredConfig(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateAdapter(); err != nil {
		log.Fatal().Err(err).Msg("invalid adapter configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	// token minting needs no repository
	admin := service.NewAdminService(nil, cfg.App, log)

	app := client.NewApp(serverAdapter, admin, client.NewStoreBackendOpener(cfg, log), os.Stdout, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("otpctl failed")
		stop()
		os.Exit(1)
	}
}
