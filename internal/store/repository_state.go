// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// stateRepository is the PostgreSQL-backed implementation of
// [StateRepository].
//
// Each lease owns one transaction, and therefore one pooled connection, for
// its whole lifetime. The lock is pg_advisory_xact_lock(class, userid): the
// server drops it on commit, on rollback and when the session dies, so an
// abandoned lease can never wedge a user.
type stateRepository struct {
	logger    *logger.Logger
	db        *DB
	users     UserRepository
	lockClass int32
}

// NewStateRepository constructs a [StateRepository]. All processes sharing a
// database must use the same lockNamespace to exclude each other.
func NewStateRepository(db *DB, users UserRepository, lockNamespace string, logger *logger.Logger) StateRepository {
	logger.Debug().Str("lock_namespace", lockNamespace).Msg("creating state repository")
	return &stateRepository{
		db:        db,
		users:     users,
		lockClass: LockClass(lockNamespace),
		logger:    logger,
	}
}

// AcquireAndLoadState ensures the identity exists, takes the user's advisory
// lock and loads the history under it.
//
// The lock statement blocks for as long as another session holds the lock;
// only ctx can interrupt the wait. On any failure the transaction is rolled
// back before returning, so no lock is left behind.
func (r *stateRepository) AcquireAndLoadState(ctx context.Context, username string) (StateLease, error) {
	log := logger.FromContext(ctx).WithUsername(username)

	identity, err := r.users.EnsureUser(ctx, username)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.AcquireAndLoadState").Msg("failed to begin transaction")
		return nil, r.db.wrapError(ErrBeginningTransaction, err)
	}

	lease := &stateLease{
		owner:    r,
		tx:       tx,
		identity: identity,
	}

	started := time.Now()
	if _, err = tx.ExecContext(ctx, acquireStateLock, r.lockClass, identity.UserID); err != nil {
		log.Err(err).Str("func", "*stateRepository.AcquireAndLoadState").Msg("failed to acquire state lock")
		_ = lease.Release(ctx)
		return nil, r.db.wrapError(ErrAcquiringLock, err)
	}
	log.Debug().Str("func", "*stateRepository.AcquireAndLoadState").
		Dur("waited", time.Since(started)).
		Msg("state lock acquired")

	lease.loaded, err = r.loadHistory(ctx, tx, identity.UserID)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.AcquireAndLoadState").Msg("failed to load history")
		_ = lease.Release(ctx)
		return nil, err
	}

	return lease, nil
}

func (r *stateRepository) loadHistory(ctx context.Context, q querier, userID int64) (models.AuthHistory, error) {
	var history models.AuthHistory

	rows, err := q.QueryContext(ctx, getTimestamps, userID)
	if err != nil {
		return models.AuthHistory{}, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var success bool
		var unix int64
		if err = rows.Scan(&success, &unix); err != nil {
			return models.AuthHistory{}, r.db.wrapError(ErrScanningRows, err)
		}

		ts := time.Unix(unix, 0).UTC()
		if success {
			history.SuccessTimestamps = append(history.SuccessTimestamps, ts)
		} else {
			history.FailTimestamps = append(history.FailTimestamps, ts)
		}
	}
	if err = rows.Err(); err != nil {
		return models.AuthHistory{}, r.db.wrapError(ErrScanningRows, err)
	}

	tokenRows, err := q.QueryContext(ctx, getUsedScratchTokens, userID)
	if err != nil {
		return models.AuthHistory{}, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer tokenRows.Close()

	for tokenRows.Next() {
		var token string
		if err = tokenRows.Scan(&token); err != nil {
			return models.AuthHistory{}, r.db.wrapError(ErrScanningRows, err)
		}
		history.UsedScratchTokens = append(history.UsedScratchTokens, token)
	}
	if err = tokenRows.Err(); err != nil {
		return models.AuthHistory{}, r.db.wrapError(ErrScanningRows, err)
	}

	return history, nil
}

// CommitState writes history in place of the stored one and ends the lease.
//
// The write is a wholesale delete-then-reinsert of the user's timestamps and
// used tokens, so its cost is O(len(history)) per commit. Timestamps are
// stored at second resolution. The advisory lock is transaction scoped and
// is released by the same COMMIT that makes the new rows visible.
//
// A lease not issued by this repository, or already finished, yields
// [ErrLockNotHeld] and nothing is touched. Every other failure rolls back,
// leaving the previous history intact and the lock released.
func (r *stateRepository) CommitState(ctx context.Context, lease StateLease, history models.AuthHistory) error {
	l, ok := lease.(*stateLease)
	if !ok || l == nil || l.owner != r {
		return ErrLockNotHeld
	}

	tx, ok := l.finish()
	if !ok {
		return ErrLockNotHeld
	}

	log := logger.FromContext(ctx).WithUsername(l.identity.Username)

	for _, token := range l.loaded.UsedScratchTokens {
		if !history.HasUsedScratchToken(token) {
			log.Error().Str("func", "*stateRepository.CommitState").Msg("new history drops a used scratch token")
			_ = tx.Rollback()
			return ErrUsedTokensShrunk
		}
	}

	if err := r.replaceHistory(ctx, tx, l.identity.UserID, history); err != nil {
		log.Err(err).Str("func", "*stateRepository.CommitState").Msg("failed to write history")
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*stateRepository.CommitState").Msg("failed to commit history")
		return r.db.wrapError(ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "*stateRepository.CommitState").
		Int("successes", len(history.SuccessTimestamps)).
		Int("failures", len(history.FailTimestamps)).
		Int("used_tokens", len(history.UsedScratchTokens)).
		Msg("history committed, state lock released")
	return nil
}

func (r *stateRepository) replaceHistory(ctx context.Context, q querier, userID int64, history models.AuthHistory) error {
	if _, err := q.ExecContext(ctx, deleteTimestamps, userID); err != nil {
		return r.db.wrapError(ErrExecutingStatement, err)
	}
	if _, err := q.ExecContext(ctx, deleteUsedScratchTokens, userID); err != nil {
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	inserts := []func(int64, models.AuthHistory) (string, []any, bool, error){
		buildInsertTimestamps,
		buildInsertUsedScratchTokens,
	}
	for _, build := range inserts {
		query, args, ok, err := build(userID, history)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if !ok {
			continue
		}
		if _, err = q.ExecContext(ctx, query, args...); err != nil {
			return r.db.wrapError(ErrExecutingStatement, err)
		}
	}

	return nil
}

// RemoveUserState deletes the identity of username; the foreign keys cascade
// to history, secret, scratch tokens and pincode.
//
// This is an administrative path and does not take the advisory lock. If it
// runs while a lease for the same user is open, the DELETE waits on the key
// locks taken by that lease's inserts, and inserts issued after a completed
// DELETE fail on the foreign key so the lease rolls back.
func (r *stateRepository) RemoveUserState(ctx context.Context, username string) error {
	log := logger.FromContext(ctx).WithUsername(username)

	if username == "" {
		return ErrInvalidUsername
	}

	result, err := r.db.ExecContext(ctx, deleteUser, username)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.RemoveUserState").Msg("failed to delete user")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "*stateRepository.RemoveUserState").Msg("nothing to remove")
		return ErrUserNotFound
	}

	log.Info().Str("func", "*stateRepository.RemoveUserState").Msg("user state removed")
	return nil
}
