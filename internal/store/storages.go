// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
)

// Storages groups every repository built on one connection pool.
type Storages struct {
	UserRepository    UserRepository
	StateRepository   StateRepository
	SecretRepository  SecretRepository
	PincodeRepository PincodeRepository
}

// NewStorages wires all repositories onto db.
func NewStorages(db *DB, cfg config.App, verifier PincodeVerifier, logger *logger.Logger) *Storages {
	users := NewUserRepository(db, logger)

	return &Storages{
		UserRepository:    users,
		StateRepository:   NewStateRepository(db, users, cfg.LockNamespace, logger),
		SecretRepository:  NewSecretRepository(db, logger),
		PincodeRepository: NewPincodeRepository(db, verifier, logger),
	}
}
