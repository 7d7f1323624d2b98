// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/pincode"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
)

type storeBackend struct {
	*store.DB
	store.StateRepository
}

// NewStoreBackendOpener returns a [BackendOpener] over the configured
// PostgreSQL database.
func NewStoreBackendOpener(cfg *config.StructuredConfig, logger *logger.Logger) BackendOpener {
	return func(ctx context.Context) (Backend, error) {
		if err := cfg.ValidateStorage(); err != nil {
			return nil, err
		}

		db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, logger)
		if err != nil {
			return nil, err
		}

		storages := store.NewStorages(db, cfg.App, pincode.NewHashVerifier(), logger)
		return &storeBackend{DB: db, StateRepository: storages.StateRepository}, nil
	}
}
