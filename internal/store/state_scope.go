// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-otp-keeper/models"
)

// WithUserState runs fn on the user's history while holding the user's lock.
//
// If fn returns a nil error the history it returns is committed, otherwise
// the lease is released and fn's error is returned. The lease is released on
// every exit path, panics included. fn's error is returned even when it comes
// with a history, so callers that want to persist a rejection must return
// nil here and report the rejection some other way.
func WithUserState(
	ctx context.Context,
	repo StateRepository,
	username string,
	fn func(history models.AuthHistory) (models.AuthHistory, error),
) error {
	lease, err := repo.AcquireAndLoadState(ctx, username)
	if err != nil {
		return err
	}
	defer func() {
		_ = lease.Release(ctx)
	}()

	updated, err := fn(lease.History())
	if err != nil {
		return err
	}

	return repo.CommitState(ctx, lease, updated)
}
