// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
	"github.com/MKhiriev/go-otp-keeper/internal/utils"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// adminService is the concrete implementation of AdminService.
type adminService struct {
	// stateRepository performs the cascading removal.
	stateRepository store.StateRepository

	// tokenSignKey is the HMAC secret used to sign and verify admin tokens.
	// Empty disables token creation and parsing.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAdminService constructs an AdminService from the admin token settings
// in cfg.
func NewAdminService(stateRepository store.StateRepository, cfg config.App, logger *logger.Logger) AdminService {
	return &adminService{
		stateRepository: stateRepository,
		tokenSignKey:    cfg.AdminTokenSignKey,
		tokenIssuer:     cfg.AdminTokenIssuer,
		tokenDuration:   cfg.AdminTokenDuration,
		logger:          logger,
	}
}

// RemoveUser deletes username with everything it owns.
//
// The removal does not wait for the user's lock. An attempt in flight for
// the same user fails its commit and leaves nothing behind.
func (a *adminService) RemoveUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx).WithUsername(username)

	if username == "" {
		log.Error().Msg("empty username provided")
		return ErrInvalidDataProvided
	}

	if err := a.stateRepository.RemoveUserState(ctx, username); err != nil {
		log.Err(err).Msg("user removal failed")
		return fmt.Errorf("user removal failed: %w", err)
	}

	if operator, ok := utils.GetOperatorFromContext(ctx); ok {
		log.Info().Str("operator", operator).Msg("user removed")
	} else {
		log.Info().Msg("user removed")
	}
	return nil
}

// CreateToken issues a signed admin token for operator.
func (a *adminService) CreateToken(ctx context.Context, operator string) (models.AdminToken, error) {
	if a.tokenSignKey == "" {
		return models.AdminToken{}, ErrAdminDisabled
	}

	token, err := utils.GenerateAdminToken(a.tokenIssuer, operator, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.AdminToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates tokenString. Any validation failure is reported as
// ErrTokenIsExpiredOrInvalid.
func (a *adminService) ParseToken(ctx context.Context, tokenString string) (models.AdminToken, error) {
	if a.tokenSignKey == "" {
		return models.AdminToken{}, ErrAdminDisabled
	}

	token, err := utils.ValidateAndParseAdminToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("admin token rejected")
		return models.AdminToken{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
