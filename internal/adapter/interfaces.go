// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the OTP service HTTP API.
//
// The primary abstraction is [ServerAdapter], which decouples otpctl from the
// underlying protocol. Error values defined in errors.go are mapped from HTTP
// status codes by mapHTTPError so that callers can use [errors.Is] (e.g.
// [ErrRejected] for 403, [ErrUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-otp-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with a running
// server.
type ServerAdapter interface {
	// SetToken stores the admin bearer token attached to admin requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Verify submits one authentication attempt. A rejection is reported as
	// [ErrRejected], never as a false result.
	Verify(ctx context.Context, req models.VerifyRequest) (models.VerifyResult, error)

	// RemoveUser deletes a user through the admin API. Requires a token.
	RemoveUser(ctx context.Context, username string) error
}
