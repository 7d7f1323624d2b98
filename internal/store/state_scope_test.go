// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-otp-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithUserState_CommitsOnSuccess(t *testing.T) {
	repo, mock := newTestStateRepo(t)

	expectAcquire(mock, "alice", 7, timestampRows(), tokenRows())
	mock.ExpectExec("DELETE FROM timestamps").WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM used_scratch_tokens").WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO timestamps").
		WithArgs(int64(7), true, int64(1000)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := WithUserState(testContext(), repo, "alice", func(h models.AuthHistory) (models.AuthHistory, error) {
		assert.True(t, h.IsEmpty())
		h.SuccessTimestamps = append(h.SuccessTimestamps, time.Unix(1000, 0))
		return h, nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithUserState_ReleasesOnError(t *testing.T) {
	repo, mock := newTestStateRepo(t)

	expectAcquire(mock, "alice", 7, timestampRows(), tokenRows())
	mock.ExpectRollback()

	errReject := errors.New("rejected")
	err := WithUserState(testContext(), repo, "alice", func(h models.AuthHistory) (models.AuthHistory, error) {
		return h, errReject
	})
	assert.ErrorIs(t, err, errReject)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithUserState_ReleasesOnPanic(t *testing.T) {
	repo, mock := newTestStateRepo(t)

	expectAcquire(mock, "alice", 7, timestampRows(), tokenRows())
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = WithUserState(testContext(), repo, "alice", func(models.AuthHistory) (models.AuthHistory, error) {
			panic("matcher bug")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithUserState_AcquireFails(t *testing.T) {
	repo, mock := newTestStateRepo(t)

	called := false
	err := WithUserState(testContext(), repo, "", func(h models.AuthHistory) (models.AuthHistory, error) {
		called = true
		return h, nil
	})
	assert.ErrorIs(t, err, ErrInvalidUsername)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}
