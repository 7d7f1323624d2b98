// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// stateLease is the concrete [StateLease]. The advisory lock it represents is
// transaction scoped: it lives exactly as long as tx does.
type stateLease struct {
	mu sync.Mutex

	owner    *stateRepository
	tx       *sql.Tx
	identity models.UserIdentity
	loaded   models.AuthHistory

	// finished is set once tx has been committed or rolled back.
	finished bool
}

func (l *stateLease) Username() string {
	return l.identity.Username
}

func (l *stateLease) UserID() int64 {
	return l.identity.UserID
}

func (l *stateLease) History() models.AuthHistory {
	return l.loaded.Clone()
}

// Release rolls the lease transaction back, which drops the advisory lock
// without writing anything.
func (l *stateLease) Release(ctx context.Context) error {
	tx, ok := l.finish()
	if !ok {
		return nil
	}

	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Err(err).
			Str("func", "*stateLease.Release").
			Str("username", l.identity.Username).
			Msg("error rolling back state transaction")
		return l.owner.db.wrapError(ErrRollingBackTransaction, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*stateLease.Release").
		Str("username", l.identity.Username).
		Msg("state lock released without commit")
	return nil
}

// finish marks the lease as used and hands out its transaction. Only the
// first caller gets ok == true.
func (l *stateLease) finish() (*sql.Tx, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.finished {
		return nil, false
	}
	l.finished = true

	return l.tx, true
}
