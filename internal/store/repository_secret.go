// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// secretRepository is the PostgreSQL-backed implementation of
// [SecretRepository]. Secrets are provisioned out of band, so reads take no
// lock.
type secretRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSecretRepository constructs a [SecretRepository].
func NewSecretRepository(db *DB, logger *logger.Logger) SecretRepository {
	logger.Debug().Msg("creating secret repository")
	return &secretRepository{
		db:     db,
		logger: logger,
	}
}

// GetUserSecret loads the secret, its optional policy and the scratch token
// pool. The rate limit is set only when both of its columns are non-null.
func (r *secretRepository) GetUserSecret(ctx context.Context, username string) (models.UserSecret, error) {
	log := logger.FromContext(ctx).WithUsername(username)

	if username == "" {
		return models.UserSecret{}, ErrInvalidUsername
	}

	var (
		secret                 models.UserSecret
		rateTimes, rateSeconds sql.NullInt64
		windowSize             sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, getUserSecret, username).Scan(&secret.Secret, &rateTimes, &rateSeconds, &windowSize)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Str("func", "*secretRepository.GetUserSecret").Msg("no secret provisioned")
		return models.UserSecret{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*secretRepository.GetUserSecret").Msg("error loading secret")
		return models.UserSecret{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	if rateTimes.Valid && rateSeconds.Valid {
		secret.RateLimit = &models.RateLimit{
			Count:  int(rateTimes.Int64),
			Window: time.Duration(rateSeconds.Int64) * time.Second,
		}
	}
	if windowSize.Valid {
		size := int(windowSize.Int64)
		secret.WindowSize = &size
	}

	rows, err := r.db.QueryContext(ctx, getScratchTokens, username)
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.GetUserSecret").Msg("error loading scratch tokens")
		return models.UserSecret{}, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var token string
		if err = rows.Scan(&token); err != nil {
			return models.UserSecret{}, r.db.wrapError(ErrScanningRows, err)
		}
		secret.ScratchTokens = append(secret.ScratchTokens, token)
	}
	if err = rows.Err(); err != nil {
		return models.UserSecret{}, r.db.wrapError(ErrScanningRows, err)
	}

	return secret, nil
}
