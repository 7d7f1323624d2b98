// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/models"
)

type pincodeRepository struct {
	logger   *logger.Logger
	db       *DB
	verifier PincodeVerifier
}

// NewPincodeRepository constructs a [PincodeRepository] that hands hash
// comparison to verifier.
func NewPincodeRepository(db *DB, verifier PincodeVerifier, logger *logger.Logger) PincodeRepository {
	logger.Debug().Msg("creating pincode repository")
	return &pincodeRepository{
		db:       db,
		verifier: verifier,
		logger:   logger,
	}
}

// VerifyUserPincode returns the verifier's answer for the stored hash.
func (r *pincodeRepository) VerifyUserPincode(ctx context.Context, username, candidate string) (bool, error) {
	log := logger.FromContext(ctx).WithUsername(username)

	if username == "" {
		return false, ErrInvalidUsername
	}

	var record models.PincodeRecord
	err := r.db.QueryRowContext(ctx, getPincode, username).Scan(&record.UserID, &record.Hash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Str("func", "*pincodeRepository.VerifyUserPincode").Msg("no pincode record")
		return false, ErrNoPincodeRecord
	case err != nil:
		log.Err(err).Str("func", "*pincodeRepository.VerifyUserPincode").Msg("error loading pincode")
		return false, r.db.wrapError(ErrExecutingQuery, err)
	}

	return r.verifier.Verify(candidate, record.Hash)
}
