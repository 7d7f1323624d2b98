// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// validate checks the invariants every binary relies on after merging and
// defaulting.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LockNamespace == "" {
		return fmt.Errorf("%w: empty lock namespace", ErrInvalidAppConfigs)
	}

	if cfg.App.OTPDigits < 6 || cfg.App.OTPDigits > 8 {
		return fmt.Errorf("%w: otp digits must be between 6 and 8, got %d", ErrInvalidAppConfigs, cfg.App.OTPDigits)
	}

	if cfg.App.OTPPeriod < time.Second || cfg.App.OTPPeriod%time.Second != 0 {
		return fmt.Errorf("%w: otp period must be a whole number of seconds, got %s", ErrInvalidAppConfigs, cfg.App.OTPPeriod)
	}

	if cfg.App.DefaultWindowSize < 1 {
		return fmt.Errorf("%w: default window size must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.DefaultRateLimitCount < 1 || cfg.App.DefaultRateLimitWindow <= 0 {
		return fmt.Errorf("%w: default rate limit must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Workers.HealthCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// ValidateStorage reports whether a database can be reached with cfg.
func (cfg *StructuredConfig) ValidateStorage() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.DB.MaxOpenConns < 1 {
		return fmt.Errorf("%w: max open conns must be positive", ErrInvalidStorageConfigs)
	}

	return nil
}

// ValidateServer checks everything the server binary needs on top of the
// common invariants.
func (cfg *StructuredConfig) ValidateServer() error {
	if err := cfg.ValidateStorage(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: neither http nor grpc address is set", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

// ValidateAdapter checks the outbound settings otpctl needs to talk to a
// running server.
func (cfg *StructuredConfig) ValidateAdapter() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
