// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/otp"
	"github.com/MKhiriev/go-otp-keeper/internal/pincode"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// verifyService is the concrete implementation of VerifyService.
type verifyService struct {
	// secretRepository provides the user's secret and policy. Read without
	// the state lock.
	secretRepository store.SecretRepository

	// stateRepository guards the read-modify-write of the history.
	stateRepository store.StateRepository

	// pincodeRepository is consulted only when requirePincode is set.
	pincodeRepository store.PincodeRepository

	requirePincode bool

	matcher *otp.Matcher

	// now is the clock used for matching.
	now func() time.Time

	logger *logger.Logger
}

// NewVerifyService wires a VerifyService to the repositories in storages and
// the OTP defaults in cfg.
func NewVerifyService(storages *store.Storages, cfg config.App, logger *logger.Logger) VerifyService {
	return &verifyService{
		secretRepository:  storages.SecretRepository,
		stateRepository:   storages.StateRepository,
		pincodeRepository: storages.PincodeRepository,
		requirePincode:    cfg.RequirePincode,
		matcher:           otp.NewMatcher(matcherConfig(cfg)),
		now:               time.Now,
		logger:            logger,
	}
}

func matcherConfig(cfg config.App) otp.Config {
	return otp.Config{
		Digits:            cfg.OTPDigits,
		Period:            cfg.OTPPeriod,
		DefaultWindowSize: cfg.DefaultWindowSize,
		DefaultRateLimit: models.RateLimit{
			Count:  cfg.DefaultRateLimitCount,
			Window: cfg.DefaultRateLimitWindow,
		},
	}
}

// Verify runs one attempt:
//  1. secret lookup, unlocked;
//  2. the PIN gate, when enabled;
//  3. matching under the user's lock, committing the updated history for
//     accepted and rejected attempts alike.
//
// Store outages are returned wrapping [store.ErrStoreUnavailable]; any other
// negative outcome wraps [ErrAuthRejected].
func (v *verifyService) Verify(ctx context.Context, req models.VerifyRequest) (models.VerifyResult, error) {
	log := logger.FromContext(ctx).WithUsername(req.Username)

	if req.Username == "" || req.Code == "" {
		log.Error().Msg("username or code is missing")
		return models.VerifyResult{}, ErrInvalidDataProvided
	}

	secret, err := v.secretRepository.GetUserSecret(ctx, req.Username)
	if err != nil {
		return models.VerifyResult{}, v.failure(log, "secret lookup", err)
	}

	if v.requirePincode {
		ok, err := v.pincodeRepository.VerifyUserPincode(ctx, req.Username, req.Pincode)
		if err != nil {
			return models.VerifyResult{}, v.failure(log, "pincode check", err)
		}
		if !ok {
			log.Warn().Str("reason", "pincode mismatch").Msg("authentication rejected")
			return models.VerifyResult{}, ErrAuthRejected
		}
	}

	var result otp.Result
	err = store.WithUserState(ctx, v.stateRepository, req.Username, func(history models.AuthHistory) (models.AuthHistory, error) {
		var updated models.AuthHistory
		result, updated = v.matcher.Check(secret, history, req.Code, v.now())
		return updated, nil
	})
	if err != nil {
		return models.VerifyResult{}, v.failure(log, "state update", err)
	}

	if !result.Accepted {
		log.Warn().Str("reason", result.Reason.Error()).Msg("authentication rejected")
		return models.VerifyResult{}, fmt.Errorf("%w: %w", ErrAuthRejected, result.Reason)
	}

	log.Info().Msg("authentication accepted")
	return models.VerifyResult{Accepted: true}, nil
}

// failure logs err with its own kind and decides what the caller sees.
func (v *verifyService) failure(log *logger.Logger, stage string, err error) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		log.Warn().Str("stage", stage).Str("reason", "user not found").Msg("authentication rejected")
		return fmt.Errorf("%w: %w", ErrAuthRejected, err)
	case errors.Is(err, store.ErrNoPincodeRecord):
		log.Warn().Str("stage", stage).Str("reason", "no pincode record").Msg("authentication rejected")
		return fmt.Errorf("%w: %w", ErrAuthRejected, err)
	case errors.Is(err, pincode.ErrMalformedHash), errors.Is(err, pincode.ErrUnsupportedHash):
		// a broken stored hash is a provisioning fault, not something to show the client
		log.Err(err).Str("stage", stage).Str("reason", "unusable pincode hash").Msg("authentication rejected")
		return fmt.Errorf("%w: %w", ErrAuthRejected, err)
	case errors.Is(err, store.ErrStoreUnavailable):
		log.Err(err).Str("stage", stage).Msg("store unavailable")
		return err
	default:
		log.Err(err).Str("stage", stage).Msg("verification failed")
		return fmt.Errorf("%s failed: %w", stage, err)
	}
}
