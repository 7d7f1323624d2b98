// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
)

type Services struct {
	VerifyService VerifyService
	AdminService  AdminService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		VerifyService: NewVerifyService(storages, cfg.App, logger),
		AdminService:  NewAdminService(storages.StateRepository, cfg.App, logger),
	}
}
