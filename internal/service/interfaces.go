// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business operations exposed by the transport
// layer: OTP verification over the locked state protocol and the
// administrative user removal.
package service

import (
	"context"

	"github.com/MKhiriev/go-otp-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VerifyService authenticates one OTP attempt.
type VerifyService interface {
	// Verify checks req against the user's secret and history and records
	// the attempt. Every rejection, including an unknown user or a missing
	// PIN record, is reported as [ErrAuthRejected].
	Verify(ctx context.Context, req models.VerifyRequest) (models.VerifyResult, error)
}

// AdminService covers operator actions and the admin token lifecycle.
type AdminService interface {
	// RemoveUser deletes the user and everything it owns.
	RemoveUser(ctx context.Context, username string) error
	CreateToken(ctx context.Context, operator string) (models.AdminToken, error)
	ParseToken(ctx context.Context, tokenString string) (models.AdminToken, error)
}
