// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// traceIDs generates ids for requests that arrive without one.
	traceIDs *utils.TraceIDGenerator

	// requestTimeout bounds every request, lock waits included. Zero
	// disables the bound.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		traceIDs:       utils.NewTraceIDGenerator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
