// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a username has no identity, or no
	// secret row where one is required. It is not the same as an empty
	// authentication history.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUsername is returned for an empty username.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrLockNotHeld is returned by CommitState when the lease was never
	// acquired from this repository or was already committed or released.
	ErrLockNotHeld = errors.New("state lock is not held")

	// ErrUsedTokensShrunk is returned by CommitState when the new history
	// drops a scratch token that was already consumed. Nothing is written.
	ErrUsedTokensShrunk = errors.New("used scratch tokens cannot be removed")

	// ErrNoPincodeRecord is returned when PIN verification is requested for
	// a user without a stored PIN hash. It is not a wrong PIN.
	ErrNoPincodeRecord = errors.New("no pincode record")

	// ErrStoreUnavailable wraps connection and transport failures.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrRollingBackTransaction is returned when an explicit rollback fails.
	ErrRollingBackTransaction = errors.New("failed to roll back transaction")

	// ErrAcquiringLock is returned when the advisory lock statement fails,
	// including when the caller's context ends while waiting for it.
	ErrAcquiringLock = errors.New("failed to acquire state lock")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
