// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It works against the "users" table only; every other table references it
// with ON DELETE CASCADE.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// connection pool and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureUser returns the identity of username and creates it if it does not
// exist yet.
//
// The insert uses ON CONFLICT DO NOTHING, so when two sessions race on a new
// username the loser gets no row back and re-reads the winner's identity.
// This runs in autocommit mode: the identity survives even if the caller
// later abandons its attempt.
func (r *userRepository) EnsureUser(ctx context.Context, username string) (models.UserIdentity, error) {
	log := logger.FromContext(ctx).WithUsername(username)

	identity, err := r.FindUser(ctx, username)
	if err == nil || !errors.Is(err, ErrUserNotFound) {
		return identity, err
	}

	var userID int64
	err = r.db.QueryRowContext(ctx, insertUser, username).Scan(&userID)
	switch {
	case err == nil:
		log.Info().Str("func", "*userRepository.EnsureUser").Int64("user_id", userID).Msg("created user identity")
		return models.UserIdentity{UserID: userID, Username: username}, nil
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.UniqueViolation:
		// lost the race to a concurrent insert
		log.Debug().Str("func", "*userRepository.EnsureUser").Msg("user identity created concurrently")
		return r.FindUser(ctx, username)
	default:
		log.Err(err).Str("func", "*userRepository.EnsureUser").Msg("error creating user identity")
		return models.UserIdentity{}, r.db.wrapError(ErrExecutingQuery, err)
	}
}

// FindUser returns the identity of username, or [ErrUserNotFound].
func (r *userRepository) FindUser(ctx context.Context, username string) (models.UserIdentity, error) {
	if username == "" {
		return models.UserIdentity{}, ErrInvalidUsername
	}

	var identity models.UserIdentity
	err := r.db.QueryRowContext(ctx, findUserByUsername, username).Scan(&identity.UserID, &identity.Username)
	switch {
	case err == nil:
		return identity, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.UserIdentity{}, ErrUserNotFound
	default:
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUser").Str("username", username).Msg("error finding user")
		return models.UserIdentity{}, r.db.wrapError(ErrExecutingQuery, err)
	}
}
