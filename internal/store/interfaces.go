// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-otp-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository maps usernames to stable numeric identities.
type UserRepository interface {
	// EnsureUser returns the identity of username, creating it on first
	// sight. Concurrent callers always observe the same identity.
	EnsureUser(ctx context.Context, username string) (models.UserIdentity, error)
	// FindUser returns the identity of username or [ErrUserNotFound].
	FindUser(ctx context.Context, username string) (models.UserIdentity, error)
}

// StateRepository guards the read-modify-write cycle over a user's
// authentication history with a store-level advisory lock.
//
// AcquireAndLoadState and CommitState are a matched pair: every lease must be
// committed or released exactly once. [WithUserState] does that bookkeeping.
type StateRepository interface {
	// AcquireAndLoadState blocks until the user's lock is free, then returns
	// a lease holding it together with the current history.
	AcquireAndLoadState(ctx context.Context, username string) (StateLease, error)
	// CommitState replaces the stored history with history and releases the
	// lease's lock in the same transaction.
	CommitState(ctx context.Context, lease StateLease, history models.AuthHistory) error
	// RemoveUserState deletes the identity and every row it owns. It does
	// not take the advisory lock.
	RemoveUserState(ctx context.Context, username string) error
}

// StateLease is the lock token returned by
// [StateRepository.AcquireAndLoadState]. It is valid until passed to
// CommitState or released.
type StateLease interface {
	Username() string
	UserID() int64
	// History returns a copy of the history loaded under the lock.
	History() models.AuthHistory
	// Release gives the lock up without writing anything. It is idempotent
	// and a no-op after a commit, so it is safe to defer.
	Release(ctx context.Context) error
}

// SecretRepository is a read-only view of provisioned OTP secrets.
type SecretRepository interface {
	// GetUserSecret returns the user's secret and policy, or
	// [ErrUserNotFound] if none is provisioned.
	GetUserSecret(ctx context.Context, username string) (models.UserSecret, error)
}

// PincodeRepository is a read-only view of stored PIN hashes.
type PincodeRepository interface {
	// VerifyUserPincode compares candidate with the stored hash, or returns
	// [ErrNoPincodeRecord] when the user has none.
	VerifyUserPincode(ctx context.Context, username, candidate string) (bool, error)
}

// PincodeVerifier compares a candidate PIN against a stored hash.
type PincodeVerifier interface {
	Verify(candidate, hash string) (bool, error)
}

// ErrorClassificator decides how a driver error is reported.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
